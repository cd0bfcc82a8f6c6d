package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ghulammustafashad/medical"
	"google.golang.org/genai"
)

// DefaultSummaryModel is the text model used for excerpts.
const DefaultSummaryModel = "gemini-2.5-flash"

// Ensure Summarizer implements medical.Excerpter at compile time.
var _ medical.Excerpter = (*Summarizer)(nil)

// Summarizer produces excerpts with a Gemini text model. Its output is
// re-budgeted so the word cap always holds.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a Summarizer using DefaultSummaryModel.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client, model: DefaultSummaryModel}
}

// Excerpt summarizes text in at most maxWords words. It fails when the
// model's answer cannot be cut to whole sentences within the cap.
func (s *Summarizer) Excerpt(ctx context.Context, text string, maxWords int) (string, error) {
	if strings.TrimSpace(text) == "" || maxWords <= 0 {
		return "", nil
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildSummaryPrompt(text, maxWords)}},
		}},
		BuildSummaryConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", medical.Errorf(medical.EINTERNAL, "gemini returned nil result")
	}

	summary := medical.Budget(strings.TrimSpace(result.Text()), maxWords)
	if summary == "" {
		return "", medical.Errorf(medical.EINTERNAL, "summary exceeds %d words", maxWords)
	}
	return summary, nil
}

// BuildSummaryConfig returns the GenerateContentConfig for summary calls.
func BuildSummaryConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize sections of medical research articles for clinicians. Use plain complete sentences. Do not add facts that are not in the text.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the user prompt for one excerpt.
func BuildSummaryPrompt(text string, maxWords int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the following text in at most %d words.\n\n", maxWords)
	sb.WriteString("<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}

// Ensure LazySummarizer implements medical.Excerpter at compile time.
var _ medical.Excerpter = (*LazySummarizer)(nil)

// LazySummarizer defers client construction until the first excerpt is
// requested. A failed construction is retried on the next call.
type LazySummarizer struct {
	newClient func(ctx context.Context) (*genai.Client, error)

	mu   sync.Mutex
	next *Summarizer
}

// NewLazySummarizer creates a LazySummarizer that builds its client with
// newClient.
func NewLazySummarizer(newClient func(ctx context.Context) (*genai.Client, error)) *LazySummarizer {
	return &LazySummarizer{newClient: newClient}
}

// Excerpt builds the client if needed and delegates to a Summarizer.
func (l *LazySummarizer) Excerpt(ctx context.Context, text string, maxWords int) (string, error) {
	s, err := l.summarizer(ctx)
	if err != nil {
		return "", err
	}
	return s.Excerpt(ctx, text, maxWords)
}

func (l *LazySummarizer) summarizer(ctx context.Context) (*Summarizer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.next != nil {
		return l.next, nil
	}
	client, err := l.newClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	l.next = NewSummarizer(client)
	return l.next, nil
}
