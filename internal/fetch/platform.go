// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	// Greenhouse patterns
	if strings.Contains(host, "greenhouse.io") ||
		strings.Contains(host, "boards.greenhouse.io") {
		return PlatformGreenhouse
	}

	// Lever patterns
	if strings.Contains(host, "lever.co") ||
		strings.Contains(host, "jobs.lever.co") {
		return PlatformLever
	}

	// Workday patterns
	if strings.Contains(host, "workday.com") ||
		strings.Contains(host, "myworkdayjobs.com") {
		return PlatformWorkday
	}

	return PlatformUnknown
}

// PlatformFormSelectors returns application-form selectors for a specific
// platform, most specific first.
func PlatformFormSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			"#application-form",
			".application--container form",
			".application--wrapper",
			"#application_form",
			"form",
		}
	case PlatformLever:
		return []string{
			".lever-application-form",
			".posting-apply form",
			".apply-section",
			"form",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='applicationForm']",
			".application-section",
			"form",
		}
	default:
		return DefaultFormSelectors()
	}
}
