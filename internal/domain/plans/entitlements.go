package plans

import (
	"fmt"
	"slices"
)

// Commercial limits per plan. Product decisions, not formulas: change them here only.
var entitlements = map[Plan]Entitlement{
	PlanFree: {
		Plan:        PlanFree,
		MaxAccounts: 1,
		Platforms:   OnlyPlatforms(PlatformInstagram),
		Features:    []Feature{FeatureBasicPublishing, FeatureScheduling},
	},
	PlanStarter: {
		Plan:        PlanStarter,
		MaxAccounts: 5,
		Platforms:   OnlyPlatforms(PlatformInstagram, PlatformFacebook, PlatformLinkedIn, PlatformTwitter),
		Features: []Feature{
			FeatureBasicPublishing,
			FeatureScheduling,
			FeatureAnalytics,
			FeatureTeamCollaboration,
		},
	},
	PlanPro: {
		Plan:        PlanPro,
		MaxAccounts: 15,
		Platforms:   AllPlatforms(),
		Features: []Feature{
			FeatureAdvancedPublishing,
			FeatureScheduling,
			FeatureAnalytics,
			FeatureTeamCollaboration,
			FeatureAutomation,
			FeatureCustomBranding,
		},
	},
	PlanBusiness: {
		Plan:        PlanBusiness,
		MaxAccounts: 999,
		Platforms:   AllPlatforms(),
		Features: []Feature{
			FeatureEnterprisePublishing,
			FeatureAdvancedScheduling,
			FeatureEnterpriseAnalytics,
			FeatureUnlimitedTeam,
			FeatureWhiteLabel,
			FeatureAPIAccess,
			FeaturePrioritySupport,
		},
	},
}

// EntitlementFor returns a copy of the plan's entitlement.
func EntitlementFor(plan Plan) (Entitlement, error) {
	e, ok := entitlements[plan]
	if !ok {
		return Entitlement{}, fmt.Errorf("%w: %q", ErrUnknownPlan, string(plan))
	}
	return e.clone(), nil
}

func IsPlatformAvailable(platform Platform, plan Plan) (bool, error) {
	e, err := EntitlementFor(plan)
	if err != nil {
		return false, err
	}
	return e.Platforms.Includes(platform), nil
}

// CanAddAccount is advisory. currentCount must be read and the new account written
// under one lock or transaction by the caller, otherwise two requests can both pass.
func CanAddAccount(currentCount int, plan Plan) (bool, error) {
	if currentCount < 0 {
		return false, ErrInvalidAccountCount
	}
	e, err := EntitlementFor(plan)
	if err != nil {
		return false, err
	}
	return currentCount < e.MaxAccounts, nil
}

// LimitReachedMessage formats as
// "Account limit reached: <current>/<max> accounts connected on the <plan> plan."
func LimitReachedMessage(plan Plan, currentCount int) (string, error) {
	e, err := EntitlementFor(plan)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Account limit reached: %d/%d accounts connected on the %s plan.",
		currentCount, e.MaxAccounts, plan), nil
}

func FeaturesFor(plan Plan) ([]Feature, error) {
	e, err := EntitlementFor(plan)
	if err != nil {
		return nil, err
	}
	return e.Features, nil
}

func HasFeature(feature Feature, plan Plan) (bool, error) {
	features, err := FeaturesFor(plan)
	if err != nil {
		return false, err
	}
	return slices.Contains(features, feature), nil
}
