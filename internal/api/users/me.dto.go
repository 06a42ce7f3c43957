package users

import "social-scheduler/internal/domain/plans"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Access  AccessDTO  `json:"access"`
	Billing BillingDTO `json:"billing"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Role         string          `json:"role"`
	Permissions  map[string]bool `json:"permissions"`
	Capabilities []string        `json:"capabilities"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan              string             `json:"plan"`
	Entitlement       *plans.Entitlement `json:"entitlement"`
	Usage             *UsageDTO          `json:"usage"`
	HasStripeCustomer bool               `json:"has_stripe_customer"`
}

type UsageDTO struct {
	Connected int `json:"connected"`
	Max       int `json:"max"`
	Remaining int `json:"remaining"`
}
