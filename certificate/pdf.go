package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/harshu1705/NSSS-Certificate/models"
)

const templateImageName = "template"

// errEmptyName guards the composer; the service never gets this far with a blank name.
var errEmptyName = errors.New("empty name")

// Options fixes the page and the name placement.
type Options struct {
	PageSize   string  // "A4"
	FontFamily string  // core font, e.g. "Helvetica"
	FontStyle  string  // "B"
	FontSize   float64 // points
	NameY      float64 // baseline, points from the top edge
}

// Composer lays out one landscape page: full-bleed background and the name
// centered horizontally.
type Composer struct {
	opts Options
	now  func() time.Time
}

func NewComposer(opts Options) *Composer {
	return &Composer{opts: opts, now: time.Now}
}

// Compose draws name exactly as given (no trimming or case changes) and
// returns the PDF bytes with the computed placement.
func (c *Composer) Compose(tpl *Template, name string) ([]byte, models.Layout, error) {
	if name == "" {
		return nil, models.Layout{}, errEmptyName
	}

	pdf := fpdf.New("L", "pt", c.opts.PageSize, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCreationDate(c.now())
	pdf.AddPage()

	w, h := pdf.GetPageSize() // page format decides the size, not the image
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(templateImageName, opt, bytes.NewReader(tpl.PNG))
	pdf.ImageOptions(templateImageName, 0, 0, w, h, false, opt, 0, "")

	pdf.SetFont(c.opts.FontFamily, c.opts.FontStyle, c.opts.FontSize)
	text := pdf.UnicodeTranslatorFromDescriptor("")(name) // core fonts are cp1252
	tw := pdf.GetStringWidth(text)
	layout := models.Layout{
		PageWidth:  w,
		PageHeight: h,
		TextWidth:  tw,
		X:          (w - tw) / 2,
		Y:          c.opts.NameY,
	}
	pdf.Text(layout.X, layout.Y, text)

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, models.Layout{}, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), layout, nil
}
