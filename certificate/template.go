// Package certificate turns an accepted submission into a PDF: it loads the
// background template, then composes the page around the participant's name.
package certificate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Template is a decoded background image, re-encoded as 8-bit PNG so the PDF
// writer can embed it whatever the source format was.
type Template struct {
	PNG    []byte
	Width  int
	Height int
}

// TemplateLoader reads the background image from disk.
type TemplateLoader struct {
	path     string
	maxWidth int // 0 keeps the native size
}

func NewTemplateLoader(path string, maxWidth int) *TemplateLoader {
	return &TemplateLoader{path: path, maxWidth: maxWidth}
}

type loadResult struct {
	tpl *Template
	err error
}

// Load runs the read/decode in the background and returns as soon as it
// finishes or ctx is done, whichever comes first.
func (l *TemplateLoader) Load(ctx context.Context) (*Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load template %s: %w", l.path, err)
	}
	done := make(chan loadResult, 1) // buffered: an abandoned load must not leak blocked
	go func() {
		tpl, err := l.load()
		done <- loadResult{tpl: tpl, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load template %s: %w", l.path, ctx.Err())
	case res := <-done:
		return res.tpl, res.err
	}
}

func (l *TemplateLoader) load() (*Template, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	img, err := decodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("decode template %s: %w", l.path, err)
	}
	img = l.fit(img)

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	b := img.Bounds()
	return &Template{PNG: out.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

// decodeImage handles everything image.Decode knows (png, jpeg, gif, bmp,
// tiff via imaging) with EXIF orientation applied, then falls back to WebP.
func decodeImage(raw []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, err
}

// fit converts to 8-bit NRGBA (16-bit PNGs can't be embedded) and downscales
// wider-than-configured templates.
func (l *TemplateLoader) fit(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if l.maxWidth <= 0 || b.Dx() <= l.maxWidth {
		return imaging.Clone(img)
	}
	h := b.Dy() * l.maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, l.maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
