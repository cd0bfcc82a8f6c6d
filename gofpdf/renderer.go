// Package gofpdf renders article digests as PDF documents using
// github.com/jung-kurt/gofpdf.
package gofpdf

import (
	"bytes"
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/fs"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Renderer implements medical.DocumentRenderer at compile time.
var _ medical.DocumentRenderer = (*Renderer)(nil)

// Renderer writes one Letter-sized PDF per article.
type Renderer struct {
	layout fs.Layout
	font   string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFont sets the core font family. Defaults to Helvetica.
func WithFont(family string) Option {
	return func(r *Renderer) {
		r.font = family
	}
}

// NewRenderer creates a Renderer writing below layout.
func NewRenderer(layout fs.Layout, opts ...Option) *Renderer {
	r := &Renderer{
		layout: layout,
		font:   "Helvetica",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderDocument writes the digest to the layout's document path.
func (r *Renderer) RenderDocument(ctx context.Context, d *medical.Digest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Article.Validate(); err != nil {
		return err
	}

	data, err := r.Render(d)
	if err != nil {
		return err
	}
	return fs.WriteFile(r.layout.DocumentPath(d.Category, d.Article.Title), data)
}

// Render returns the PDF bytes for a digest. The document holds, in
// order: the category line, title, authors, DOI, the abstract under a
// "Summary" heading when present, and every section title with its
// full body.
func (r *Renderer) Render(d *medical.Digest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(d.Article.Title, true)
	pdf.SetAuthor(d.Article.Authors, true)
	pdf.SetSubject(capitalize(d.Category), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont(r.font, "B", 20)
	pdf.MultiCell(0, 10, tr("Category: "+capitalize(d.Category)), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(r.font, "B", 16)
	pdf.MultiCell(0, 8, tr("Title: "+d.Article.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(r.font, "", 11)
	pdf.MultiCell(0, 6, tr("Authors: "+d.Article.Authors), "", "L", false)
	pdf.MultiCell(0, 6, tr("DOI: "+d.Article.DOI), "", "L", false)

	if d.Abstract != "" {
		pdf.Ln(4)
		pdf.SetFont(r.font, "B", 13)
		pdf.MultiCell(0, 7, "Summary:", "", "L", false)
		pdf.SetFont(r.font, "", 11)
		pdf.MultiCell(0, 6, tr(d.Abstract), "", "L", false)
	}

	for title, body := range d.Sections.All() {
		pdf.Ln(4)
		pdf.SetFont(r.font, "B", 13)
		pdf.MultiCell(0, 7, tr(title), "", "L", false)
		pdf.SetFont(r.font, "", 11)
		pdf.MultiCell(0, 6, tr(body), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, medical.Errorf(medical.EINTERNAL, "render pdf for %s: %v", d.Article.ID, err)
	}
	return buf.Bytes(), nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
