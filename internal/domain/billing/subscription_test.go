package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"social-scheduler/internal/domain/plans"
)

func TestPlanForStatus(t *testing.T) {
	tests := []struct {
		status     string
		wantPlan   plans.Plan
		wantChange bool
	}{
		{"active", plans.PlanPro, true},
		{"trialing", plans.PlanPro, true},
		{" active ", plans.PlanPro, true},
		{"canceled", plans.PlanFree, true},
		{"incomplete_expired", plans.PlanFree, true},
		{"", plans.PlanFree, true},
		{"past_due", "", false},
		{"unpaid", "", false},
		{"paused", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, changed := PlanForStatus(tt.status, plans.PlanPro)
			assert.Equal(t, tt.wantChange, changed)
			assert.Equal(t, tt.wantPlan, got)
		})
	}
}
