package fs_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ghulammustafashad/medical/fs"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Anaesthesia for Cesarean Delivery",
			want:  "anaesthesia-for-cesarean-delivery",
		},
		{
			name:  "strips diacritics",
			title: "Sédation en réanimation",
			want:  "sedation-en-reanimation",
		},
		{
			name:  "collapses punctuation",
			title: "Consensus statement: training  outcomes (2022)",
			want:  "consensus-statement-training-outcomes-2022",
		},
		{
			name:  "removes path separators",
			title: "Pre/post-operative care",
			want:  "pre-post-operative-care",
		},
		{
			name:  "curly apostrophe",
			title: "O’Brien’s method",
			want:  "o-brien-s-method",
		},
		{
			name:  "no leading or trailing hyphen",
			title: "  ...Intro!  ",
			want:  "intro",
		},
		{
			name:  "empty title",
			title: "",
			want:  "untitled",
		},
		{
			name:  "only punctuation",
			title: "?!",
			want:  "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slug(tt.title))
		})
	}
}

func TestSlug_LongTitle(t *testing.T) {
	t.Parallel()

	title := strings.Repeat("anesthesiology outcome ", 20)

	got := fs.Slug(title)

	assert.LessOrEqual(t, utf8.RuneCountInString(got), 120)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "anesthesiology-outcome-"))
}
