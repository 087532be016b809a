package security

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Documentation name constraints.
const (
	// DocExtension is the fixed extension appended to every stored document.
	DocExtension = ".md"

	maxDocNameLength = 64
	docNamePattern   = `^[a-zA-Z0-9._-]+$`
)

var docNameRegex = regexp.MustCompile(docNamePattern)

// SanitizeDocName derives the canonical, store-confined filename for a
// caller-supplied documentation name:
//   - any path component is stripped, so the result can never escape the
//     store directory ("../../etc/passwd" resolves to "passwd.md")
//   - spaces are hyphenated
//   - the fixed extension is appended if absent
//
// Returns an error if nothing usable remains after sanitization.
func SanitizeDocName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name cannot be empty")
	}

	if strings.Contains(trimmed, "\x00") {
		return "", fmt.Errorf("name contains null byte")
	}
	for _, r := range trimmed {
		if r < 0x20 || r == 0x7F {
			return "", fmt.Errorf("name contains control character")
		}
	}

	// Strip any path component, windows or unix style. Backslashes are
	// normalized by hand since filepath.ToSlash is a no-op off Windows.
	base := path.Base(strings.ReplaceAll(trimmed, `\`, "/"))
	if base == "." || base == ".." || base == "/" {
		return "", fmt.Errorf("name has no file component")
	}

	// Hyphenate spaces, drop leading dots so the file cannot be hidden.
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.TrimLeft(base, ".")
	if base == "" {
		return "", fmt.Errorf("name has no file component")
	}

	if !strings.HasSuffix(base, DocExtension) {
		base += DocExtension
	}

	stem := strings.TrimSuffix(base, DocExtension)
	if stem == "" {
		return "", fmt.Errorf("name has no file component")
	}
	if len(stem) > maxDocNameLength {
		return "", fmt.Errorf("name exceeds maximum length of %d characters", maxDocNameLength)
	}
	if !docNameRegex.MatchString(stem) {
		return "", fmt.Errorf("name must contain only alphanumeric characters, dots, hyphens, and underscores: %q", stem)
	}

	return base, nil
}
