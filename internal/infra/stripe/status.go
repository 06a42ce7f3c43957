package stripe

import "strings"

// NormalizeStripeStatus folds Stripe subscription statuses into
// none|active|trialing|past_due|canceled; unknown values pass through trimmed.
func NormalizeStripeStatus(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return "none"
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return s
	}
}
