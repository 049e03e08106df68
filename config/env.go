package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment.
// CI is detected from the CI variable; everything else comes from ENV and
// unknown values fall back to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps a name to an Environment, defaulting to Development.
func ParseEnvironment(name string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(name))) {
	case Production:
		return Production
	case Test:
		return Test
	case CI:
		return CI
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}
