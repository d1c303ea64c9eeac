// Package naming derives canonical package names from directory names.
package naming

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// ScopedName is a package name split into its optional scope and local part.
type ScopedName struct {
	Scope string
	Local string
}

var invalidRun = regexp.MustCompile(`[^a-z0-9]+`)

// ParseScopedName splits raw on "/". Only the first two fragments are used:
// "@acme/widget/extra" yields scope "@acme" and local "widget".
func ParseScopedName(raw string) ScopedName {
	fragments := strings.Split(raw, "/")
	if len(fragments) > 1 {
		return ScopedName{Scope: fragments[0], Local: fragments[1]}
	}
	return ScopedName{Local: raw}
}

// String joins the scope and local part back together.
func (n ScopedName) String() string {
	if n.Scope == "" {
		return n.Local
	}
	return n.Scope + "/" + n.Local
}

// Normalize returns the canonical generator name for raw: the local part is
// converted to kebab-case, the scope is kept verbatim.
func Normalize(raw string) string {
	parsed := ParseScopedName(raw)
	parsed.Local = KebabCase(parsed.Local)
	return parsed.String()
}

// KebabCase lowercases s, splits words on case and digit boundaries and joins
// them with single hyphens. Anything outside [a-z0-9-] is dropped.
func KebabCase(s string) string {
	kebab := strcase.ToKebab(s)
	kebab = invalidRun.ReplaceAllString(kebab, "-")
	return strings.Trim(kebab, "-")
}
