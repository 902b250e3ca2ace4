package layout

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	cellPadding    = 5
	baselineOffset = 7
)

// Metadata fills the PDF information dictionary.
type Metadata struct {
	Title     string
	Subject   string
	Author    string
	CreatedAt time.Time
}

type renderer struct {
	pdf    *fpdf.Fpdf
	layout *Layout
	tr     func(string) string
	fill   func(string) string
}

// Render draws every element with {{name}} placeholders replaced from values.
// Equal input yields identical bytes.
func (l *Layout) Render(values map[string]string, meta Metadata) ([]byte, error) {
	pdf := fpdf.New(l.Page.Orientation, l.Page.Unit, l.Page.Size, "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(meta.CreatedAt)
	pdf.SetModificationDate(meta.CreatedAt)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Author, true)

	r := renderer{
		pdf:    pdf,
		layout: l,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		fill:   placeholders(values),
	}

	pdf.AddPage()

	for _, el := range l.Elements {
		switch el.Kind {
		case KindText:
			r.text(el)
		case KindLine:
			r.line(el)
		case KindTable:
			r.table(el)
		case KindBadge:
			r.badge(el)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write ticket: %w", err)
	}

	return buf.Bytes(), nil
}

// placeholders builds a replacer with keys sorted, so the result does not
// depend on map order.
func placeholders(values map[string]string) func(string) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, "{{"+key+"}}", values[key])
	}

	return strings.NewReplacer(pairs...).Replace
}

func (r *renderer) color(name string) (int, int, int) {
	c := r.layout.Colors[name]

	return c[0], c[1], c[2]
}

func (r *renderer) font(el Element) {
	size := el.Size
	if size == 0 {
		size = 10
	}

	r.pdf.SetFont(r.layout.Page.Font, el.Style, size)
	r.pdf.SetTextColor(r.color(el.Color))
}

// write draws s at the given anchor. Centered and right aligned text is
// measured after translation to the PDF code page.
func (r *renderer) write(x, y float64, align, s string) {
	s = r.tr(s)

	switch align {
	case AlignCenter:
		x -= r.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= r.pdf.GetStringWidth(s)
	}

	r.pdf.Text(x, y, s)
}

func (r *renderer) text(el Element) {
	r.font(el)
	r.write(el.X, el.Y, el.Align, r.fill(el.Text))
}

func (r *renderer) line(el Element) {
	r.pdf.SetDrawColor(r.color(el.Color))
	r.pdf.SetLineWidth(el.Width)
	r.pdf.Line(el.X, el.Y, el.X2, el.Y2)
}

// table draws a filled header row and one bordered value row. Every column
// is always drawn, so a missing value never shifts the others.
func (r *renderer) table(el Element) {
	width := 0.0
	for _, col := range el.Columns {
		width += col.Width
	}

	bottom := el.Y + el.HeaderHeight + el.RowHeight

	r.pdf.SetFillColor(r.color(el.Fill))
	r.pdf.Rect(el.X, el.Y, width, el.HeaderHeight, "F")

	r.pdf.SetDrawColor(r.color(el.Border))
	r.pdf.SetLineWidth(0.3)
	r.pdf.Rect(el.X, el.Y, width, el.HeaderHeight, "D")
	r.pdf.Rect(el.X, el.Y+el.HeaderHeight, width, el.RowHeight, "D")

	x := el.X
	for i, col := range el.Columns {
		if i > 0 {
			r.pdf.Line(x, el.Y, x, bottom)
		}

		r.font(Element{Size: el.Size, Style: "B", Color: el.Color})
		r.write(x+cellPadding, el.Y+baselineOffset, AlignLeft, col.Title)

		r.font(Element{Size: el.Size, Color: el.Color})
		r.write(x+cellPadding, el.Y+el.HeaderHeight+baselineOffset, AlignLeft, r.fill(col.Value))

		x += col.Width
	}
}

func (r *renderer) badge(el Element) {
	r.pdf.SetDrawColor(r.color(el.Border))
	r.pdf.SetFillColor(r.color(el.Fill))
	r.pdf.SetLineWidth(0.3)
	r.pdf.RoundedRect(el.X, el.Y, el.W, el.H, el.R, "1234", "FD")

	r.font(el)
	r.write(el.X+el.W/2, el.Y+el.H*2/3, AlignCenter, r.fill(el.Text))
}
