package users

import (
	"social-scheduler/internal/domain/access"
	"social-scheduler/internal/domain/accounts"
	"social-scheduler/internal/domain/plans"
	"social-scheduler/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email, Name: u.Name}
}

// BuildAccessDTO lists every capability with its grant. A role outside the known set
// yields an all-false map rather than an error so /me still renders.
func BuildAccessDTO(role access.Role) AccessDTO {
	dto := AccessDTO{
		Role:         string(role),
		Permissions:  make(map[string]bool, len(access.Capabilities())),
		Capabilities: []string{},
	}
	perms, err := access.PermissionsFor(role)
	for _, c := range access.Capabilities() {
		granted := err == nil && perms.Has(c)
		dto.Permissions[string(c)] = granted
		if granted {
			dto.Capabilities = append(dto.Capabilities, string(c))
		}
	}
	return dto
}

func BuildBillingDTO(u users.User, usage *accounts.Usage) BillingDTO {
	dto := BillingDTO{
		Plan:              string(u.Plan),
		HasStripeCustomer: u.StripeCustomerID != nil && *u.StripeCustomerID != "",
	}
	if e, err := plans.EntitlementFor(u.Plan); err == nil {
		dto.Entitlement = &e
	}
	if usage != nil {
		dto.Usage = &UsageDTO{
			Connected: usage.Connected,
			Max:       usage.Max,
			Remaining: usage.Remaining,
		}
	}
	return dto
}
