package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Output sizes in pixels. The 180px icon is the apple-touch variant;
// the other two are the classic favicon sizes.
const (
	SizeFavicon16  = 16
	SizeFavicon32  = 32
	SizeAppleTouch = 180
)

// DefaultThemeColor is the theme-color emitted with the link snippet
// when no color is supplied.
const DefaultThemeColor = "#ffffff"

// IconSet holds the three encoded PNG icons produced from one source
// image.
type IconSet struct {
	// Favicon16 is the 16x16 PNG.
	Favicon16 []byte

	// Favicon32 is the 32x32 PNG.
	Favicon32 []byte

	// AppleTouch is the 180x180 PNG.
	AppleTouch []byte
}

// Generate decodes the source image and renders the three fixed-size
// icons. Decoding failures are returned as an error; a decoded image
// always yields all three sizes.
//
// The three renders run concurrently over the decoded bitmap, which is
// read-only after decode, so no locking is needed. There is no
// cancellation mid-render: once decoding succeeds the renders run to
// completion.
func Generate(r io.Reader) (*IconSet, error) {
	src, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	set := &IconSet{}
	var g errgroup.Group
	for _, job := range []struct {
		size int
		dst  *[]byte
	}{
		{SizeFavicon16, &set.Favicon16},
		{SizeFavicon32, &set.Favicon32},
		{SizeAppleTouch, &set.AppleTouch},
	} {
		g.Go(func() error {
			encoded, err := renderSquare(src, job.size)
			if err != nil {
				return err
			}
			*job.dst = encoded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// renderSquare produces one icon: center-crop the source to its largest
// square, scale to size, and flatten onto opaque white.
func renderSquare(src image.Image, size int) ([]byte, error) {
	bounds := src.Bounds()
	side := min(bounds.Dx(), bounds.Dy())

	cropped := imaging.CropCenter(src, side, side)
	scaled := imaging.Resize(cropped, size, size, imaging.Lanczos)

	canvas := imaging.New(size, size, color.White)
	flattened := imaging.OverlayCenter(canvas, scaled, 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flattened, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode %dpx icon: %w", size, err)
	}
	return buf.Bytes(), nil
}

// LinkSnippet returns the head declarations for the generated icons in
// fixed order: 32px icon, 16px icon, apple-touch icon, then a
// theme-color meta tag carrying themeColor. Icons that were not
// produced are skipped; an empty themeColor falls back to
// DefaultThemeColor.
func (s *IconSet) LinkSnippet(themeColor string) []string {
	if themeColor == "" {
		themeColor = DefaultThemeColor
	}

	var lines []string
	if len(s.Favicon32) > 0 {
		lines = append(lines, `<link rel="icon" type="image/png" sizes="32x32" href="/favicon-32x32.png">`)
	}
	if len(s.Favicon16) > 0 {
		lines = append(lines, `<link rel="icon" type="image/png" sizes="16x16" href="/favicon-16x16.png">`)
	}
	if len(s.AppleTouch) > 0 {
		lines = append(lines, `<link rel="apple-touch-icon" sizes="180x180" href="/apple-touch-icon.png">`)
	}
	lines = append(lines, fmt.Sprintf(`<meta name="theme-color" content="%s">`, themeColor))
	return lines
}
