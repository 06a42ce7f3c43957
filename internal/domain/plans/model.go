package plans

import (
	"encoding/json"
	"fmt"
	"slices"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformPinterest Platform = "pinterest"
)

type Feature string

const (
	FeatureBasicPublishing      Feature = "basic_publishing"
	FeatureScheduling           Feature = "scheduling"
	FeatureAnalytics            Feature = "analytics"
	FeatureTeamCollaboration    Feature = "team_collaboration"
	FeatureAdvancedPublishing   Feature = "advanced_publishing"
	FeatureAutomation           Feature = "automation"
	FeatureCustomBranding       Feature = "custom_branding"
	FeatureEnterprisePublishing Feature = "enterprise_publishing"
	FeatureAdvancedScheduling   Feature = "advanced_scheduling"
	FeatureEnterpriseAnalytics  Feature = "enterprise_analytics"
	FeatureUnlimitedTeam        Feature = "unlimited_team"
	FeatureWhiteLabel           Feature = "white_label"
	FeatureAPIAccess            Feature = "api_access"
	FeaturePrioritySupport      Feature = "priority_support"
)

// PlatformScope is either every platform or an explicit allow-list.
// The zero value allows nothing.
type PlatformScope struct {
	all       bool
	platforms []Platform
}

func AllPlatforms() PlatformScope {
	return PlatformScope{all: true}
}

func OnlyPlatforms(platforms ...Platform) PlatformScope {
	return PlatformScope{platforms: slices.Clone(platforms)}
}

func (s PlatformScope) All() bool {
	return s.all
}

func (s PlatformScope) Includes(p Platform) bool {
	return s.all || slices.Contains(s.platforms, p)
}

// List returns the explicit allow-list; it is nil when All() is true.
func (s PlatformScope) List() []Platform {
	if s.all {
		return nil
	}
	return slices.Clone(s.platforms)
}

// MarshalJSON renders the literal "all" or an array of identifiers.
func (s PlatformScope) MarshalJSON() ([]byte, error) {
	if s.all {
		return json.Marshal("all")
	}
	if s.platforms == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.platforms)
}

func (s *PlatformScope) UnmarshalJSON(b []byte) error {
	var word string
	if err := json.Unmarshal(b, &word); err == nil {
		if word != "all" {
			return fmt.Errorf("platform scope: unexpected %q", word)
		}
		*s = AllPlatforms()
		return nil
	}
	var list []Platform
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("platform scope: %w", err)
	}
	*s = OnlyPlatforms(list...)
	return nil
}

type Entitlement struct {
	Plan        Plan          `json:"plan"`
	MaxAccounts int           `json:"maxAccounts"`
	Platforms   PlatformScope `json:"platforms"`
	Features    []Feature     `json:"features"`
}

func (e Entitlement) clone() Entitlement {
	e.Platforms = PlatformScope{all: e.Platforms.all, platforms: slices.Clone(e.Platforms.platforms)}
	e.Features = slices.Clone(e.Features)
	return e
}
