package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/harvest"
	medhttp "github.com/ghulammustafashad/medical/http"
	"github.com/ghulammustafashad/medical/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Catalog   *medical.Catalog
	Harvester *harvest.Harvester
	Records   medical.RecordService
	Metrics   *prometheus.Metrics
	Formatter medical.PreviewFormatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Catalog      string        `help:"Catalog YAML file (defaults to the built-in anesthesiology catalog)"`
	BaseURL      string        `name:"base-url" default:"${base_url}" help:"Article page root"`
	UserAgent    string        `name:"user-agent" default:"${user_agent}" help:"User-Agent sent with every request"`
	Timeout      time.Duration `help:"Per-request timeout (0 uses the transport default)"`
	RPS          float64       `name:"rps" default:"1" help:"Requests per second per host (0 disables the limit)"`
	Retries      int           `default:"0" help:"Retries per failed fetch, with 1s, 2s, 4s backoff"`
	Browser      bool          `help:"Fetch pages with headless Chrome"`
	Robots       bool          `help:"Honor robots.txt"`
	ExcerptWords int           `name:"excerpt-words" default:"50" help:"Word budget of each preview excerpt"`
	Excerpt      string        `enum:"budget,gemini" default:"budget" help:"Excerpt strategy (budget, gemini)"`
	DB           string        `name:"db" default:"medical.db" help:"Record ledger database path"`
	GeminiAPIKey string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiURL    string        `name:"gemini-url" hidden:"" help:"Gemini API endpoint override"`
	Verbose      bool          `short:"v" help:"Enable debug logging"`

	Run     RunCmd     `cmd:"" default:"withargs" help:"Harvest every article in the catalog (default)"`
	Extract ExtractCmd `cmd:"" help:"Fetch one article and print its preview"`
	History HistoryCmd `cmd:"" help:"List processed articles from the record ledger"`
}

// Vars returns the interpolation variables for CLI defaults.
func Vars() map[string]string {
	return map[string]string{
		"base_url":   medical.DefaultBaseURL,
		"user_agent": medhttp.DefaultUserAgent,
	}
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Output       string        `short:"o" default:"output" help:"Output directory"`
	ArticleDelay time.Duration `name:"article-delay" default:"2s" help:"Pause between articles"`
	AudioDelay   time.Duration `name:"audio-delay" default:"2s" help:"Pause after each audio rendering"`
	Audio        bool          `default:"true" negatable:"" help:"Render audio (requires GEMINI_API_KEY)"`
	Markdown     bool          `help:"Also write a Markdown digest per article"`
	History      bool          `default:"true" negatable:"" help:"Record outcomes in the ledger"`
	Pushgateway  string        `help:"Prometheus Pushgateway URL to push run metrics to"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	ID string `arg:"" help:"Article identifier (PMCID)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Article string `help:"Only show records for this article"`
	Outcome string `help:"Only show records with this outcome (rendered, fetch_failed, disallowed, no_sections, render_failed)"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of records"`
}
