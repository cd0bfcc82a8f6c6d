package main

import (
	"fmt"

	"github.com/ghulammustafashad/medical"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := medical.RecordFilter{Limit: c.Limit}
	if c.Article != "" {
		filter.ArticleID = &c.Article
	}
	if c.Outcome != "" {
		outcome := medical.Outcome(c.Outcome)
		filter.Outcome = &outcome
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", medical.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'medical run' to process the catalog.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-12s  %-13s  %s\n",
			r.ProcessedAt.Local().Format("2006-01-02 15:04:05"), r.ArticleID, r.Outcome, r.Title)
		if r.Error != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", r.Error)
		}
	}

	return nil
}
