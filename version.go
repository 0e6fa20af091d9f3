package reve

import "runtime"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.1.0"

// APIVersion is the Reve API version this SDK was built against.
//
// The server reports its version in the x-reve-version response header
// and in the response body. Use [CheckCompatibility] to compare it
// against [APIVersionRange].
const APIVersion = "1.0.0"

// APIVersionRange is the semver constraint describing the API versions
// this SDK is known to work with.
const APIVersionRange = "^1.0"

// userAgent identifies the SDK on outgoing requests, e.g.
// "reve-ai-go/0.1.0 go1.24.0".
func userAgent() string {
	return "reve-ai-go/" + Version + " " + runtime.Version()
}
