package og

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the parsed regular and bold faces used by the compositor.
// When a brand supplies its own font bytes it is used for both weights.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewFontSet parses brandFont (TTF/OTF bytes) with the embedded Go fonts as
// fallback. Unparseable brand bytes fall back silently rather than failing
// the render.
func NewFontSet(brandFont []byte) (*FontSet, error) {
	var regular, bold *opentype.Font

	if len(brandFont) > 0 {
		if parsed, err := opentype.Parse(brandFont); err == nil {
			regular = parsed
			bold = parsed
		}
	}
	if regular == nil {
		var err error
		regular, err = opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse fallback font: %w", err)
		}
		bold, err = opentype.Parse(gobold.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse fallback bold font: %w", err)
		}
	}
	return &FontSet{regular: regular, bold: bold}, nil
}

// Face returns a rendering face at the given pixel size.
func (fs *FontSet) Face(size float64, bold bool) (font.Face, error) {
	src := fs.regular
	if bold {
		src = fs.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
