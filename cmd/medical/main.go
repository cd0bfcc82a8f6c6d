package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/fs"
	"github.com/ghulammustafashad/medical/gemini"
	"github.com/ghulammustafashad/medical/gofpdf"
	"github.com/ghulammustafashad/medical/goquery"
	"github.com/ghulammustafashad/medical/harvest"
	medhttp "github.com/ghulammustafashad/medical/http"
	"github.com/ghulammustafashad/medical/prometheus"
	"github.com/ghulammustafashad/medical/robots"
	"github.com/ghulammustafashad/medical/rod"
	medslog "github.com/ghulammustafashad/medical/slog"
	"github.com/ghulammustafashad/medical/sqlite"
	"github.com/ghulammustafashad/medical/yaml"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
	"google.golang.org/genai"
)

//go:embed catalog.yaml
var defaultCatalog []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the record ledger.
	DB *sqlite.DB

	// closers are run in reverse order by Close.
	closers []func() error
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if e := m.closers[i](); e != nil && err == nil {
			err = e
		}
	}
	m.closers = nil
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Formatter: medical.PreviewFormatter{
			Width: runewidth.StringWidth,
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("medical"),
		kong.Description("Harvest scientific articles into console previews, PDF digests and audio"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(Vars()),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Logger = newLogger(stderr, cli.Verbose)

	cmd := kongCtx.Command()
	switch {
	case strings.HasPrefix(cmd, "history"):
		if err := m.openDB(cli.DB, stderr); err != nil {
			return err
		}
		deps.Records = sqlite.NewRecordService(m.DB)

	case strings.HasPrefix(cmd, "extract"):
		catalog, err := loadCatalog(cli.Catalog)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", medical.ErrorMessage(err))
			return err
		}
		deps.Catalog = catalog

		h, err := m.newHarvester(cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Harvester = h

	default:
		catalog, err := loadCatalog(cli.Catalog)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", medical.ErrorMessage(err))
			return err
		}
		deps.Catalog = catalog

		h, err := m.newHarvester(cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		if err := m.wireRenderers(ctx, h, cli, deps.Logger); err != nil {
			return err
		}

		if cli.Run.History {
			if err := m.openDB(cli.DB, stderr); err != nil {
				return err
			}
			deps.Records = sqlite.NewRecordService(m.DB)
			h.Records = deps.Records
		}

		if cli.Run.Pushgateway != "" {
			deps.Metrics = prometheus.NewMetrics()
			h.Fetcher = prometheus.NewInstrumentedFetcher(h.Fetcher, deps.Metrics)
		}
		deps.Harvester = h
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string, stderr io.Writer) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Use --db to choose a different database path")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	m.closers = append(m.closers, m.DB.Close)
	return nil
}

// newHarvester wires the fetch, extract and excerpt stages shared by the
// run and extract commands.
func (m *Main) newHarvester(cli *CLI, logger *slog.Logger, stderr io.Writer) (*harvest.Harvester, error) {
	opts := []medhttp.Option{
		medhttp.WithUserAgent(cli.UserAgent),
		medhttp.WithTimeout(cli.Timeout),
	}
	if cli.RPS > 0 {
		opts = append(opts, medhttp.WithLimiter(harvest.NewHostLimiter(cli.RPS)))
	}
	httpFetcher := medhttp.NewFetcher(opts...)

	var fetcher medical.Fetcher = httpFetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(
			rod.WithUserAgent(cli.UserAgent),
			rod.WithFetchTimeout(cli.Timeout),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		m.closers = append(m.closers, rodFetcher.Close)
		fetcher = rodFetcher
	}

	fetcher = medslog.NewLoggingFetcher(fetcher, logger)
	if cli.Retries > 0 {
		retry := harvest.NewRetryFetcher(fetcher, retryDelays(cli.Retries))
		retry.OnRetry = func(url string, attempt int, err error) {
			logger.Warn("fetch retry", "url", url, "attempt", attempt, "err", err)
		}
		fetcher = retry
	}

	h := &harvest.Harvester{
		Fetcher:      fetcher,
		Extractor:    medslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		BaseURL:      cli.BaseURL,
		ExcerptWords: cli.ExcerptWords,
	}

	if cli.Robots {
		h.Robots = robots.NewPolicy(httpFetcher, cli.UserAgent)
	}

	if cli.Excerpt == "gemini" {
		apiKey, baseURL := cli.GeminiAPIKey, cli.GeminiURL
		summarizer := gemini.NewLazySummarizer(func(ctx context.Context) (*genai.Client, error) {
			return gemini.NewClient(ctx, apiKey, baseURL)
		})
		h.Excerpter = medslog.NewLoggingExcerpter(summarizer, logger)
	}

	return h, nil
}

// wireRenderers attaches the document and audio renderers of the run
// command. Audio is disabled with a warning when no API key is set.
func (m *Main) wireRenderers(ctx context.Context, h *harvest.Harvester, cli *CLI, logger *slog.Logger) error {
	layout := fs.NewLayout(cli.Run.Output)

	var documents medical.DocumentRenderer = gofpdf.NewRenderer(layout)
	if cli.Run.Markdown {
		documents = multiDocumentRenderer{documents, fs.NewMarkdownRenderer(layout)}
	}
	h.Documents = medslog.NewLoggingDocumentRenderer(documents, logger)

	h.ArticleDelay = cli.Run.ArticleDelay
	h.AudioDelay = cli.Run.AudioDelay

	if !cli.Run.Audio {
		return nil
	}
	if cli.GeminiAPIKey == "" {
		logger.Warn("audio disabled", "reason", "GEMINI_API_KEY not set")
		return nil
	}

	client, err := gemini.NewClient(ctx, cli.GeminiAPIKey, cli.GeminiURL)
	if err != nil {
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	h.Audio = medslog.NewLoggingAudioRenderer(gemini.NewSpeaker(client, layout), logger)
	return nil
}

// retryDelays returns n backoff delays, doubling from one second and
// capped at the last default delay.
func retryDelays(n int) []time.Duration {
	defaults := harvest.DefaultRetryDelays()
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = defaults[min(i, len(defaults)-1)]
	}
	return delays
}

// loadCatalog reads the catalog at path, or the embedded catalog when
// path is empty.
func loadCatalog(path string) (*medical.Catalog, error) {
	if path == "" {
		return yaml.ParseCatalog(bytes.NewReader(defaultCatalog))
	}
	return yaml.LoadCatalog(path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// multiDocumentRenderer renders each digest with every renderer in turn,
// stopping at the first failure.
type multiDocumentRenderer []medical.DocumentRenderer

func (r multiDocumentRenderer) RenderDocument(ctx context.Context, d *medical.Digest) error {
	for _, renderer := range r {
		if err := renderer.RenderDocument(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
