package main

import (
	"fmt"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/harvest"
)

// Run executes the extract command. The article is looked up in the
// catalog; unknown identifiers are fetched with the identifier as title.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	article := &medical.Article{ID: c.ID, Title: c.ID}
	for _, a := range deps.Catalog.Articles {
		if a.ID == c.ID {
			article = a
			break
		}
	}

	progress := func(event harvest.ProgressEvent) {
		if event.State == harvest.StateSummarized {
			fmt.Fprint(deps.Stdout, deps.Formatter.Format(event.Preview))
		}
	}

	result, err := deps.Harvester.HarvestArticle(deps.Ctx, deps.Catalog.Category, article, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", medical.ErrorMessage(err))
		return err
	}

	switch result.Outcome {
	case medical.OutcomeRendered:
		fmt.Fprintf(deps.Stdout, "%d sections\n", result.Sections)
		return nil
	case medical.OutcomeNoSections:
		fmt.Fprintf(deps.Stderr, "error: article %s has no sections\n", c.ID)
		return medical.Errorf(medical.ENOTFOUND, "article %s has no sections", c.ID)
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", medical.ErrorMessage(result.Error))
		return result.Error
	}
}
