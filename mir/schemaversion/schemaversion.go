// Package schemaversion validates the -schema-version flag accepted by
// polonius-facts: a semver string identifying which revision of the
// fact schema (mir/facts) the caller expects, so that a consumer built
// against an older schema fails fast with a clear error rather than
// silently misinterpreting a renamed or reordered fact relation.
package schemaversion

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Current is the schema version this build emits.
const Current = "v1.0.0"

// Check reports an error if requested is not a valid semver string, or
// names a major version this build cannot produce.
func Check(requested string) error {
	if requested == "" {
		return nil
	}
	if !semver.IsValid(requested) {
		return fmt.Errorf("invalid -schema-version %q: not a valid semver string", requested)
	}
	if semver.Major(requested) != semver.Major(Current) {
		return fmt.Errorf("unsupported -schema-version %q: this build emits schema %s (major %s)",
			requested, Current, semver.Major(Current))
	}
	return nil
}
