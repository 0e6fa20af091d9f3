package reve

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CompatibilityStatus is the outcome of comparing a server-reported API
// version against [APIVersionRange].
type CompatibilityStatus int

const (
	// Compatible means the server version is within the supported range.
	Compatible CompatibilityStatus = iota

	// Incompatible means the server version is outside the supported range.
	Incompatible

	// Unknown means the server version could not be parsed.
	Unknown
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult describes how a server version relates to the
// version range this SDK supports.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible reports whether the result status is [Compatible].
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

var apiConstraint = mustConstraint(APIVersionRange)

func mustConstraint(rangeSpec string) *semver.Constraints {
	c, err := semver.NewConstraint(rangeSpec)
	if err != nil {
		panic("reve: invalid APIVersionRange: " + err.Error())
	}
	return c
}

// IsCompatible reports whether serverVersion falls within
// [APIVersionRange]. Unparseable versions are not compatible.
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}

// CheckCompatibility compares serverVersion, as reported by the
// x-reve-version header (see [ImageResponse.Version]), against
// [APIVersionRange].
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse server version %q: %v", serverVersion, err)
		return result
	}

	if apiConstraint.Check(v) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with SDK %s", serverVersion, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is not compatible with supported range %s", serverVersion, APIVersionRange)
	}
	return result
}

// MustBeCompatible panics unless serverVersion is within the supported
// range. Intended for startup assertions in applications that pin the
// API version.
func MustBeCompatible(serverVersion string) {
	result := CheckCompatibility(serverVersion)
	if !result.IsCompatible() {
		panic("reve: " + result.Message)
	}
}
