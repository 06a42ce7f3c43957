package plans

import (
	"fmt"
	"strings"
)

type Plan string

// Plan constants, cheapest first.
const (
	PlanFree     Plan = "free"
	PlanStarter  Plan = "starter"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

func Plans() []Plan {
	return []Plan{PlanFree, PlanStarter, PlanPro, PlanBusiness}
}

// ParsePlan normalizes and validates a plan coming from outside the process
// (request bodies, DB rows, Stripe price metadata).
func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := entitlements[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlan, s)
	}
	return p, nil
}

// Rank is the position of the plan in the natural ordering, or -1 for unknown plans.
func (p Plan) Rank() int {
	for i, known := range Plans() {
		if p == known {
			return i
		}
	}
	return -1
}

func (p Plan) Valid() bool {
	return p.Rank() >= 0
}

func (p Plan) String() string {
	return string(p)
}
