package og

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Brand carries the resolved visual identity used for a render. FontPrimary
// holds the raw font file bytes, fetched eagerly by the brand loader.
type Brand struct {
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
	FontPrimary    []byte
}

// PackImage is one rendered size of a pack.
type PackImage struct {
	Size PackSize
	PNG  []byte
}

// Default max lengths for the three copy fields. Shared with the smart-fill
// prompt so AI suggestions fit the layout.
const (
	HeadlineMaxLen = 48
	SubheadMaxLen  = 80
	CTAMaxLen      = 18
)

// Fixed layout constants at every canvas size. Margins deliberately do not
// scale with the canvas: the panel hugs the bottom edge the same way on a
// story as on an OG card.
const (
	panelInset  = 40
	panelPad    = 24
	panelRadius = 12

	headlineSize = 64
	subheadSize  = 32
	ctaSize      = 28

	ctaPadX   = 18
	ctaPadY   = 10
	ctaRadius = 8

	logoX, logoY = 28, 28
	logoW, logoH = 140, 40

	qrSide = 120
)

var placeholders = map[string]string{
	"headline": "Your Headline",
	"subhead":  "Short supporting line goes here",
	"cta":      "Shop now",
}

// scrim is the translucent black legibility layer behind the text panel.
var scrim = color.NRGBA{A: 89} // 35% opacity

// Compositor layers background photo, scrim panel, copy, logo and link badge
// into a single PNG.
type Compositor struct {
	Fetcher *AssetFetcher
}

func NewCompositor() *Compositor {
	return &Compositor{Fetcher: NewAssetFetcher()}
}

// Compose renders one flattened raster at exactly width x height.
//
// A photo value that is present but unfetchable fails the render; a logo or
// link badge that cannot be produced is skipped, since those are decoration
// rather than content. Absent text fields fall back to placeholders, so a
// render never fails just because the caller sent no copy.
func (c *Compositor) Compose(width, height int, values map[string]string, brand Brand) ([]byte, error) {
	bg := ParseHexColorDefault(brand.SecondaryColor, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	fg := ParseHexColorDefault(brand.PrimaryColor, color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff})

	canvas := imaging.New(width, height, bg)

	if photoURL := values["photo"]; photoURL != "" {
		photo, err := c.Fetcher.FetchImage(photoURL)
		if err != nil {
			return nil, fmt.Errorf("background photo: %w", err)
		}
		cover := imaging.Fill(photo, width, height, imaging.Center, imaging.Lanczos)
		canvas = imaging.Paste(canvas, cover, image.Pt(0, 0))
	}

	fonts, err := NewFontSet(brand.FontPrimary)
	if err != nil {
		return nil, err
	}

	if err := c.drawPanel(canvas, width, height, values, fonts, fg); err != nil {
		return nil, err
	}

	if brand.LogoURL != "" {
		if logo, err := c.Fetcher.FetchImage(brand.LogoURL); err != nil {
			logrus.WithError(err).Warn("skipping logo")
		} else {
			canvas = imaging.Paste(canvas, imaging.Resize(logo, logoW, logoH, imaging.Lanczos), image.Pt(logoX, logoY))
		}
	}

	if link := values["link"]; link != "" {
		if qr, err := QRImage(link, qrSide); err != nil {
			logrus.WithError(err).Warn("skipping link badge")
		} else {
			canvas = imaging.Paste(canvas, qr, image.Pt(width-logoX-qrSide, logoY))
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPack composes the same content at every registry size, in registry
// order. The batch aborts on the first failed size; no partial pack is
// returned.
func (c *Compositor) RenderPack(values map[string]string, brand Brand) ([]PackImage, error) {
	out := make([]PackImage, 0, len(PackSizes))
	for _, s := range PackSizes {
		png, err := c.Compose(s.Width, s.Height, values, brand)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s.Name, err)
		}
		out = append(out, PackImage{Size: s, PNG: png})
	}
	return out, nil
}

func textValue(values map[string]string, key string) string {
	if v := strings.TrimSpace(values[key]); v != "" {
		return v
	}
	return placeholders[key]
}

// drawPanel draws the bottom-anchored scrim panel with headline, subhead and
// CTA pill, all center-aligned.
func (c *Compositor) drawPanel(canvas *image.NRGBA, width, height int, values map[string]string, fonts *FontSet, fg color.NRGBA) error {
	headline := textValue(values, "headline")
	subhead := textValue(values, "subhead")
	cta := textValue(values, "cta")

	hSize := ClampFontSize(headlineSize, 38, headlineSize, len(headline), HeadlineMaxLen)
	sSize := ClampFontSize(subheadSize, 20, subheadSize, len(subhead), SubheadMaxLen)
	cSize := ClampFontSize(ctaSize, 17, ctaSize, len(cta), CTAMaxLen)

	hFace, err := fonts.Face(float64(hSize), true)
	if err != nil {
		return err
	}
	sFace, err := fonts.Face(float64(sSize), false)
	if err != nil {
		return err
	}
	cFace, err := fonts.Face(float64(cSize), false)
	if err != nil {
		return err
	}

	panelW := width - 2*panelInset
	innerW := panelW - 2*panelPad

	hLines := wrapText(headline, innerW, hFace)
	sLines := wrapText(subhead, innerW, sFace)

	hLineH := hSize + hSize/20 // line-height 1.05
	sLineH := sSize * 5 / 4
	pillH := cSize + 2*ctaPadY

	panelH := 2*panelPad + len(hLines)*hLineH + 12 + len(sLines)*sLineH + 18 + pillH
	panelY := height - panelInset - panelH
	if panelY < 0 {
		panelY = 0
	}

	fillRoundedRect(canvas, image.Rect(panelInset, panelY, panelInset+panelW, panelY+panelH), panelRadius, scrim)

	centerX := panelInset + panelW/2
	y := panelY + panelPad

	for _, line := range hLines {
		y += hLineH
		drawCentered(canvas, line, centerX, y, fg, hFace)
	}
	y += 12
	for _, line := range sLines {
		y += sLineH
		drawCentered(canvas, line, centerX, y, fg, sFace)
	}
	y += 18

	// CTA pill: white badge, dark text, sized to its label.
	ctaAdv := font.MeasureString(cFace, cta).Ceil()
	pillW := ctaAdv + 2*ctaPadX
	pillX := centerX - pillW/2
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dark := color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	fillRoundedRect(canvas, image.Rect(pillX, y, pillX+pillW, y+pillH), ctaRadius, white)
	drawCentered(canvas, cta, centerX, y+ctaPadY+cSize, dark, cFace)

	return nil
}

// wrapText breaks text into lines that fit maxWidth using face metrics.
func wrapText(text string, maxWidth int, face font.Face) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		test := current + " " + word
		if font.MeasureString(face, test).Ceil() > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	return append(lines, current)
}

// drawCentered draws text with its horizontal center at centerX and baseline
// at y.
func drawCentered(img *image.NRGBA, text string, centerX, y int, col color.NRGBA, face font.Face) {
	adv := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(centerX-adv/2, y),
	}
	d.DrawString(text)
}

// fillRoundedRect fills rect with col, rounding corners by radius, blending
// translucent colors over the existing pixels.
func fillRoundedRect(img *image.NRGBA, rect image.Rectangle, radius int, col color.NRGBA) {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if insideRounded(rect, radius, x, y) {
				blendPixel(img, x, y, col)
			}
		}
	}
}

func insideRounded(rect image.Rectangle, radius, x, y int) bool {
	if radius <= 0 {
		return true
	}
	cx, cy := x, y
	switch {
	case x < rect.Min.X+radius && y < rect.Min.Y+radius:
		cx, cy = rect.Min.X+radius, rect.Min.Y+radius
	case x >= rect.Max.X-radius && y < rect.Min.Y+radius:
		cx, cy = rect.Max.X-radius-1, rect.Min.Y+radius
	case x < rect.Min.X+radius && y >= rect.Max.Y-radius:
		cx, cy = rect.Min.X+radius, rect.Max.Y-radius-1
	case x >= rect.Max.X-radius && y >= rect.Max.Y-radius:
		cx, cy = rect.Max.X-radius-1, rect.Max.Y-radius-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func blendPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Pt(x, y).In(img.Bounds())) {
		return
	}
	if c.A == 0xff {
		img.SetNRGBA(x, y, c)
		return
	}
	dst := img.NRGBAAt(x, y)
	a := int(c.A)
	inv := 255 - a
	img.SetNRGBA(x, y, color.NRGBA{
		R: uint8((int(c.R)*a + int(dst.R)*inv) / 255),
		G: uint8((int(c.G)*a + int(dst.G)*inv) / 255),
		B: uint8((int(c.B)*a + int(dst.B)*inv) / 255),
		A: 0xff,
	})
}
