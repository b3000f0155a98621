package types

import (
	"fmt"
	"strings"
)

// Platform identifies a publishing destination.
type Platform string

const (
	PlatformDevto  Platform = "devto"
	PlatformMedium Platform = "medium"
)

// ParsePlatform resolves user input to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "devto", "dev.to":
		return PlatformDevto, nil
	case "medium":
		return PlatformMedium, nil
	default:
		return "", fmt.Errorf("unknown platform %q: valid options are devto, medium", s)
	}
}

func (p Platform) String() string {
	if p == PlatformDevto {
		return "dev.to"
	}
	return "Medium"
}

// MaxTags returns the platform's declared tag limit.
func (p Platform) MaxTags() int {
	if p == PlatformDevto {
		return 4
	}
	return 5
}
