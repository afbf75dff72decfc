package notes

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeKey normalizes a raw client-supplied name or path into a safe
// storage key. The steps run in a fixed order: trim surrounding whitespace,
// normalize backslashes to forward slashes, collapse every whitespace run to
// a single underscore, strip "../" segments until none remain, and drop
// leading slashes.
//
// The function is total and idempotent; any input maps to some key. An empty
// result is possible (e.g. for blank input) and callers must treat it as
// invalid before uploading.
func SanitizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = strings.ReplaceAll(key, `\`, "/")
	key = whitespaceRun.ReplaceAllString(key, "_")

	// Removal can splice new "../" together (e.g. "....//"), so loop until
	// the string is clean rather than replacing once.
	for strings.Contains(key, "../") {
		key = strings.ReplaceAll(key, "../", "")
	}

	for strings.HasPrefix(key, "/") {
		key = strings.TrimPrefix(key, "/")
	}
	return key
}
