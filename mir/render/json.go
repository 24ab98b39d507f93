package render

import (
	"encoding/json"

	"github.com/ecstatic-morse/polonius.next/mir/facts"
)

// JSON renders f as indented JSON: an array of nodes in the same sorted
// order and fact ordering as Text, for consumers that would rather not
// parse the textual format.
func JSON(f *facts.Facts) ([]byte, error) {
	return json.MarshalIndent(Group(f), "", "\t")
}
