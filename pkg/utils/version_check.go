package utils

import (
	"strings"

	"golang.org/x/mod/semver"
)

// CheckMinVersion reports whether toCheck is at least required.
// A missing "v" prefix is added, invalid versions never satisfy the check.
func CheckMinVersion(toCheck, required string) bool {
	if !strings.HasPrefix(toCheck, "v") {
		toCheck = "v" + toCheck
	}
	if !strings.HasPrefix(required, "v") {
		required = "v" + required
	}
	if !semver.IsValid(toCheck) {
		return false
	}
	return semver.Compare(toCheck, required) >= 0
}
