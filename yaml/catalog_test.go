package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `category: anesthesiology
articles:
  - id: PMC10328513
    title: "A consensus statement: training programme outcomes"
    authors: George Shorten, Lisa Bahrey
    doi: 10.1136/bmjopen-2021-051934
    year: 2022 Jun 20
  - id: PMC2
    title: Second
`

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("parses articles in order", func(t *testing.T) {
		t.Parallel()

		c, err := yaml.ParseCatalog(strings.NewReader(validCatalog))

		require.NoError(t, err)
		assert.Equal(t, "anesthesiology", c.Category)
		require.Len(t, c.Articles, 2)
		assert.Equal(t, &medical.Article{
			ID:      "PMC10328513",
			Title:   "A consensus statement: training programme outcomes",
			Authors: "George Shorten, Lisa Bahrey",
			DOI:     "10.1136/bmjopen-2021-051934",
			Year:    "2022 Jun 20",
		}, c.Articles[0])
		assert.Equal(t, "PMC2", c.Articles[1].ID)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog(strings.NewReader("category: x\narticles:\n  - id: PMC1\n    title: T\n    pmc_id: PMC1\n"))

		assert.Equal(t, medical.EINVALID, medical.ErrorCode(err))
	})

	t.Run("rejects article without title", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog(strings.NewReader("category: x\narticles:\n  - id: PMC1\n"))

		assert.Equal(t, medical.EINVALID, medical.ErrorCode(err))
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog(strings.NewReader(""))

		assert.Equal(t, medical.EINVALID, medical.ErrorCode(err))
		assert.Equal(t, "catalog is empty", medical.ErrorMessage(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog(strings.NewReader("category: [unterminated"))

		assert.Equal(t, medical.EINVALID, medical.ErrorCode(err))
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0644))

		c, err := yaml.LoadCatalog(path)

		require.NoError(t, err)
		assert.Len(t, c.Articles, 2)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, medical.ENOTFOUND, medical.ErrorCode(err))
	})
}
