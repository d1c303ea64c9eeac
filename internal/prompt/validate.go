package prompt

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	kerrors "github.com/phravins/kivagen/internal/errors"
)

// CleanVersion trims whitespace and a single leading "v" or "=" and, when
// the rest parses as strict semver, returns its canonical form. Anything else
// is returned trimmed so the validator can reject it.
func CleanVersion(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "=")
	s = strings.TrimPrefix(s, "v")
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return v.String()
}

// ValidateVersion accepts full MAJOR.MINOR.PATCH versions with optional
// prerelease and build metadata.
func ValidateVersion(value string) error {
	if _, err := semver.StrictNewVersion(value); err != nil {
		return kerrors.NewValidationError(KeyVersion,
			fmt.Sprintf("%q is not a valid semantic version", value),
			"Use the MAJOR.MINOR.PATCH form, e.g. 1.0.0")
	}
	return nil
}
