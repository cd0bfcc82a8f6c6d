package medical_test

import (
	"strings"
	"testing"

	"github.com/ghulammustafashad/medical"
	"github.com/stretchr/testify/assert"
)

func TestHeuristicSegmenter_Segment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", []string{""}},
		{"single sentence", "No boundary here", []string{"No boundary here"}},
		{"period and question mark", "It works. Does it? Yes.", []string{"It works.", "Does it?", "Yes."}},
		{"title abbreviation", "Dr. Smith is fast. He ran.", []string{"Dr. Smith is fast.", "He ran."}},
		{"dotted abbreviation", "Use drugs, e.g. propofol. Done.", []string{"Use drugs, e.g. propofol.", "Done."}},
		{"newline boundary", "First line.\nSecond line.", []string{"First line.", "Second line."}},
		{"extra whitespace stays with next sentence", "One.  Two.", []string{"One.", " Two."}},
		{"exclamation is not a boundary", "Wow! Really.", []string{"Wow! Really."}},
		{"single initial still splits", "J. Smith wrote it.", []string{"J.", "Smith wrote it."}},
		{"unicode abbreviation", "Voir é.g. ici. Fin.", []string{"Voir é.g. ici.", "Fin."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, medical.HeuristicSegmenter{}.Segment(tt.text))
		})
	}
}

func TestBudget(t *testing.T) {
	t.Parallel()

	t.Run("abbreviation keeps first sentence whole and over cap", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", medical.Budget("Dr. Smith is fast. He ran.", 3))
	})

	t.Run("stops at first sentence over cap", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "The cat ran.", medical.Budget("The cat ran. It was fast.", 3))
	})

	t.Run("includes everything under cap", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "The cat ran. It was fast.", medical.Budget("The cat ran. It was fast.", 7))
	})

	t.Run("does not skip ahead to shorter sentences", func(t *testing.T) {
		t.Parallel()

		text := "Short one. This sentence is far too long for the cap. Tiny."

		assert.Equal(t, "Short one.", medical.Budget(text, 4))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, 1, 50} {
			assert.Equal(t, "", medical.Budget("", n))
		}
	})

	t.Run("zero cap", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", medical.Budget("Some words here.", 0))
	})

	t.Run("negative cap", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", medical.Budget("Some words here.", -1))
	})

	t.Run("newline separators become single spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "One two. Three four.", medical.Budget("One two.\nThree four.", 10))
	})

	t.Run("uses custom segmenter", func(t *testing.T) {
		t.Parallel()

		b := medical.Budgeter{Segmenter: medical.SegmenterFunc(func(text string) []string {
			return strings.Split(text, "|")
		})}

		assert.Equal(t, "a b c", b.Budget("a b|c|d e f", 3))
	})
}

func TestBudget_Properties(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"The cat ran. It was fast.",
		"Dr. Smith is fast. He ran.",
		"Anaesthesia provision varies widely. Resources were assessed in 2021? Yes, i.e. broadly.\nStaffing shortages persist.",
		"Background.  Patients were enrolled. Outcomes improved by 3.5 points. Mr. Jones agreed.",
		strings.Repeat("word ", 80) + "end.",
	}

	for _, text := range texts {
		for _, max := range []int{0, 1, 3, 5, 10, 50, 100} {
			got := medical.Budget(text, max)

			assert.LessOrEqual(t, len(strings.Fields(got)), max, "cap exceeded for %q at %d", text, max)
			assert.Equal(t, got, medical.Budget(got, max), "not idempotent for %q at %d", text, max)
			assert.True(t, strings.HasPrefix(strings.Join(strings.Fields(text), " "), strings.Join(strings.Fields(got), " ")),
				"result is not a prefix of %q at %d", text, max)
		}
	}
}
