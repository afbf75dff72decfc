package notes_test

import (
	"strings"
	"testing"

	"file-gateway/feature/notes"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Plain", "notes.txt", "notes.txt"},
		{"TrimsWhitespace", "  notes.txt  ", "notes.txt"},
		{"BackslashesNormalized", `dir\sub\file.txt`, "dir/sub/file.txt"},
		{"WhitespaceRunCollapsed", "my   report  v2.pdf", "my_report_v2.pdf"},
		{"TraversalRemoved", "../../etc/passwd", "etc/passwd"},
		{"NestedTraversalRemoved", "a/../../b", "a/b"},
		{"SplicedTraversalRemoved", "....//file", "file"},
		{"LeadingSlashesStripped", "///file.txt", "file.txt"},
		{"AllStepsCombined", `  a\b/../../c d.txt `, "a/b/c_d.txt"},
		{"Empty", "", ""},
		{"OnlyTraversal", "../", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notes.SanitizeKey(tt.raw))
		})
	}
}

func TestSanitizeKey_Idempotent(t *testing.T) {
	inputs := []string{
		"notes.txt",
		"  a\\b/../../c d.txt ",
		"../../x",
		"dir/sub/file with spaces.pdf",
		"....//deep/../nested",
		"",
	}

	for _, raw := range inputs {
		once := notes.SanitizeKey(raw)
		assert.Equal(t, once, notes.SanitizeKey(once), "sanitize must be idempotent for %q", raw)
	}
}

func TestSanitizeKey_NoTraversalRemains(t *testing.T) {
	inputs := []string{
		"../../../../etc/shadow",
		"a/../b/../c",
		"..\\..\\windows\\system32",
		"....//....//x",
		"/../../leading",
	}

	for _, raw := range inputs {
		key := notes.SanitizeKey(raw)
		assert.NotContains(t, key, "../", "no traversal may remain in %q -> %q", raw, key)
		assert.False(t, strings.HasPrefix(key, "/"), "no leading slash in %q -> %q", raw, key)
	}
}
