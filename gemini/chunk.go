package gemini

import (
	"strings"

	"github.com/ghulammustafashad/medical"
)

// ChunkText splits text into pieces of at most maxBytes, breaking on
// sentence boundaries found by seg. A sentence longer than maxBytes is
// split between words; a single word longer than maxBytes is emitted
// whole. Empty sentences are dropped.
func ChunkText(seg medical.Segmenter, text string, maxBytes int) []string {
	var chunks []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}
	add := func(piece string) {
		if cur.Len() > 0 && cur.Len()+1+len(piece) > maxBytes {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(piece)
	}

	for _, sentence := range seg.Segment(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if len(sentence) <= maxBytes {
			add(sentence)
			continue
		}
		for _, word := range strings.Fields(sentence) {
			add(word)
		}
	}
	flush()

	return chunks
}
