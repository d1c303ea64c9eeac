// Package prompt declares the questions asked before generating a project and
// resolves raw input into validated answers.
package prompt

import (
	"github.com/phravins/kivagen/internal/naming"
)

// Answer keys.
const (
	KeyName        = "name"
	KeyVersion     = "version"
	KeyDescription = "description"
)

// DefaultVersion is offered when no configured default exists.
const DefaultVersion = "1.0.0"

// Field describes one question. Filter runs before Validate; both are optional.
type Field struct {
	Key      string
	Message  string
	Default  string
	Validate func(string) error
	Filter   func(string) string
}

// Apply turns raw input into the stored value for f. Empty input takes the
// default.
func (f Field) Apply(raw string) (string, error) {
	if raw == "" {
		raw = f.Default
	}
	value := raw
	if f.Filter != nil {
		value = f.Filter(value)
	}
	if f.Validate != nil {
		if err := f.Validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

// Fields returns the questions in the order they are asked. dirName is the
// base name of the destination directory.
func Fields(dirName, defaultVersion string) []Field {
	if defaultVersion == "" {
		defaultVersion = DefaultVersion
	}
	return []Field{
		{
			Key:     KeyName,
			Message: "Your generator name",
			Default: naming.Normalize(dirName),
			Filter:  naming.Normalize,
		},
		{
			Key:      KeyVersion,
			Message:  "Your generator version",
			Default:  defaultVersion,
			Validate: ValidateVersion,
			Filter:   CleanVersion,
		},
		{
			Key:     KeyDescription,
			Message: "Your generator description",
			Default: "",
		},
	}
}

// WithDefaults returns a copy of fields whose defaults are replaced by the
// non-empty presets. Presets go through the field filter.
func WithDefaults(fields []Field, presets map[string]string) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		if v, ok := presets[f.Key]; ok && v != "" {
			if f.Filter != nil {
				v = f.Filter(v)
			}
			f.Default = v
		}
		out[i] = f
	}
	return out
}

// Resolve answers every field from presets without asking. A value failing
// its validator is returned as a validation error.
func Resolve(fields []Field, presets map[string]string) (Answers, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, err := f.Apply(presets[f.Key])
		if err != nil {
			return Answers{}, err
		}
		values[f.Key] = v
	}
	return FromValues(values), nil
}
