package main

import (
	"context"
	"fmt"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/harvest"
	medslog "github.com/ghulammustafashad/medical/slog"
)

// pushJob is the Pushgateway job name for run metrics.
const pushJob = "medical"

// Run executes the run command. Per-article failures are reported but
// never fail the command.
func (c *RunCmd) Run(deps *Dependencies) error {
	logProgress := medslog.NewProgressLogger(deps.Logger)
	progress := func(event harvest.ProgressEvent) {
		logProgress(event)
		switch event.State {
		case harvest.StateSummarized:
			fmt.Fprint(deps.Stdout, deps.Formatter.Format(event.Preview))
		case harvest.StateRendered, harvest.StateAborted:
			if deps.Metrics != nil {
				deps.Metrics.ObserveOutcome(event.Outcome)
			}
		}
	}

	result, err := deps.Harvester.Harvest(deps.Ctx, deps.Catalog, progress)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Rendered %d, skipped %d, failed %d of %d articles\n",
			result.Rendered, result.Skipped, result.Failed, len(deps.Catalog.Articles))
	}

	if deps.Metrics != nil {
		if perr := deps.Metrics.Push(context.WithoutCancel(deps.Ctx), c.Pushgateway, pushJob); perr != nil {
			deps.Logger.Warn("metrics push failed", "url", c.Pushgateway, "err", perr)
		}
	}

	switch {
	case err == nil:
	case deps.Ctx.Err() != nil:
		fmt.Fprintln(deps.Stderr, "interrupted")
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", medical.ErrorMessage(err))
	}
	return err
}
