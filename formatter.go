package medical

import (
	"strings"
	"unicode/utf8"
)

// PreviewFormatter renders a Preview as plain text with underlined
// headings.
type PreviewFormatter struct {
	// Width returns the display width of a heading, used to size its
	// underline. Nil means rune count.
	Width func(s string) int
}

// Format renders p. Each heading is followed by a row of dashes as wide
// as the heading.
func (f PreviewFormatter) Format(p *Preview) string {
	var sb strings.Builder
	sb.WriteString(p.Article.Title)
	sb.WriteString("\n\n")
	sb.WriteString("Authors: " + p.Article.Authors + "\n")
	sb.WriteString("PMCID: " + p.Article.ID + "\n\n")

	f.writeBlock(&sb, "Summary", p.Abstract)
	for _, s := range p.Sections {
		f.writeBlock(&sb, s.Title, s.Excerpt)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (f PreviewFormatter) writeBlock(sb *strings.Builder, heading, body string) {
	width := f.Width
	if width == nil {
		width = utf8.RuneCountInString
	}
	sb.WriteString(heading + "\n")
	sb.WriteString(strings.Repeat("-", width(heading)) + "\n")
	sb.WriteString(body + "\n\n")
}

// FormatPreview renders p with the default formatter.
func FormatPreview(p *Preview) string {
	return PreviewFormatter{}.Format(p)
}
