package plans

import "strings"

func KnownPlatforms() []Platform {
	return []Platform{
		PlatformInstagram,
		PlatformFacebook,
		PlatformLinkedIn,
		PlatformTwitter,
		PlatformTikTok,
		PlatformYouTube,
		PlatformPinterest,
	}
}

// NormalizePlatform lower-cases and trims an identifier. Unknown identifiers are kept:
// they are valid input and resolve to the business plan.
func NormalizePlatform(s string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(s)))
}

// RecommendedPlan returns the cheapest plan offering the platform.
func RecommendedPlan(platform Platform) Plan {
	switch platform {
	case PlatformInstagram:
		return PlanFree
	case PlatformFacebook, PlatformLinkedIn, PlatformTwitter:
		return PlanStarter
	case PlatformTikTok, PlatformYouTube, PlatformPinterest:
		return PlanPro
	default:
		return PlanBusiness
	}
}
