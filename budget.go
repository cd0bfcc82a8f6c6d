package medical

import (
	"context"
	"strings"
	"unicode"
)

// DefaultExcerptWords is the word cap used for console excerpts.
const DefaultExcerptWords = 50

// Segmenter splits text into an ordered sequence of sentences.
type Segmenter interface {
	Segment(text string) []string
}

// SegmenterFunc adapts a function to the Segmenter interface.
type SegmenterFunc func(text string) []string

// Segment calls f(text).
func (f SegmenterFunc) Segment(text string) []string {
	return f(text)
}

// HeuristicSegmenter splits on a whitespace character that follows '.' or
// '?', except after abbreviation shapes: a word character, '.', a word
// character and one more character (as in "e.g." or "i.e."), or a capital
// followed by a lowercase letter and '.' (as in "Dr." or "Mr.").
//
// The separating whitespace character is consumed; any further whitespace
// stays at the start of the next sentence. Decimal numbers, ellipses and
// single-letter initials are not handled specially.
type HeuristicSegmenter struct{}

// Segment implements Segmenter.
func (HeuristicSegmenter) Segment(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	for i, r := range runes {
		if !unicode.IsSpace(r) || !isSentenceBoundary(runes, i) {
			continue
		}
		sentences = append(sentences, string(runes[start:i]))
		start = i + 1
	}
	return append(sentences, string(runes[start:]))
}

// isSentenceBoundary reports whether the whitespace at runes[i] ends a
// sentence.
func isSentenceBoundary(runes []rune, i int) bool {
	if i < 1 {
		return false
	}
	if p := runes[i-1]; p != '.' && p != '?' {
		return false
	}
	if i >= 4 && isWordRune(runes[i-4]) && runes[i-3] == '.' && isWordRune(runes[i-2]) {
		return false
	}
	if i >= 3 && isUpperASCII(runes[i-3]) && isLowerASCII(runes[i-2]) && runes[i-1] == '.' {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isUpperASCII(r rune) bool { return 'A' <= r && r <= 'Z' }

func isLowerASCII(r rune) bool { return 'a' <= r && r <= 'z' }

// Budgeter reduces text to a prefix of whole sentences whose combined
// whitespace-delimited word count does not exceed a cap.
type Budgeter struct {
	// Segmenter splits text into sentences. Nil means HeuristicSegmenter.
	Segmenter Segmenter
}

// Budget accumulates sentences in order until the next one would push the
// word count past maxWords, and returns them joined by a single space.
// It never cuts inside a sentence: if the first sentence alone is too long
// the result is empty.
func (b Budgeter) Budget(text string, maxWords int) string {
	seg := b.Segmenter
	if seg == nil {
		seg = HeuristicSegmenter{}
	}

	var selected []string
	count := 0
	for _, sentence := range seg.Segment(text) {
		n := len(strings.Fields(sentence))
		if count+n > maxWords {
			break
		}
		selected = append(selected, sentence)
		count += n
	}
	return strings.Join(selected, " ")
}

// Excerpt implements Excerpter. It never fails.
func (b Budgeter) Excerpt(_ context.Context, text string, maxWords int) (string, error) {
	return b.Budget(text, maxWords), nil
}

// Budget is Budgeter{}.Budget with the heuristic segmenter.
func Budget(text string, maxWords int) string {
	return Budgeter{}.Budget(text, maxWords)
}
