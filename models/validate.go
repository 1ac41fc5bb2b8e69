package models

import (
	"fmt"
	"regexp"
)

var hexColorRx = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const (
	MinCanvasDim = 100
	MaxCanvasDim = 4000
)

var validAligns = map[string]bool{"": true, "left": true, "center": true, "right": true}

// ValidateTemplate checks the structural invariants of a template definition:
// canvas bounds, unique field keys, default values referencing declared
// fields, and maxLen only on text fields.
func ValidateTemplate(t *Template) error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.Width < MinCanvasDim || t.Width > MaxCanvasDim {
		return fmt.Errorf("width must be between %d and %d", MinCanvasDim, MaxCanvasDim)
	}
	if t.Height < MinCanvasDim || t.Height > MaxCanvasDim {
		return fmt.Errorf("height must be between %d and %d", MinCanvasDim, MaxCanvasDim)
	}

	seen := map[string]bool{}
	for _, f := range t.Fields {
		if f.Key == "" {
			return fmt.Errorf("field key is required")
		}
		if seen[f.Key] {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		seen[f.Key] = true

		if f.Type != "text" && f.Type != "image" {
			return fmt.Errorf("field %q: type must be text or image", f.Key)
		}
		if f.Type != "text" && f.MaxLen != 0 {
			return fmt.Errorf("field %q: maxLen only applies to text fields", f.Key)
		}
		if f.MaxLen < 0 {
			return fmt.Errorf("field %q: maxLen must be non-negative", f.Key)
		}
		if !validAligns[f.Align] {
			return fmt.Errorf("field %q: align must be left, center or right", f.Key)
		}
	}

	for key := range t.DefaultValues {
		if !seen[key] {
			return fmt.Errorf("default value for undeclared field %q", key)
		}
	}
	return nil
}

// ValidateBrandKit checks name and #RRGGBB colors (case-insensitive).
func ValidateBrandKit(b *BrandKit) error {
	if b.Name == "" {
		return fmt.Errorf("brand kit name is required")
	}
	if !hexColorRx.MatchString(b.PrimaryColor) {
		return fmt.Errorf("invalid primary color %q", b.PrimaryColor)
	}
	if !hexColorRx.MatchString(b.SecondaryColor) {
		return fmt.Errorf("invalid secondary color %q", b.SecondaryColor)
	}
	return nil
}
