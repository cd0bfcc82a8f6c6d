package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ghulammustafashad/medical/gemini"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeAPI serves canned generateContent responses and records request
// bodies.
type fakeAPI struct {
	mu       sync.Mutex
	requests []string
	respond  func(n int) (int, string)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, string(body))
	n := len(f.requests)
	f.mu.Unlock()

	status, payload := f.respond(n)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, payload)
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func audioResponse(pcm []byte) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role": "model",
				"parts": []any{map[string]any{
					"inlineData": map[string]any{
						"mimeType": "audio/L16;codec=pcm;rate=24000",
						"data":     base64.StdEncoding.EncodeToString(pcm),
					},
				}},
			},
		}},
	})
	return string(b)
}

func textResponse(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"text": text}},
			},
		}},
	})
	return string(b)
}

func newTestClient(t *testing.T, api *fakeAPI) *genai.Client {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client, err := gemini.NewClient(context.Background(), "test-key", server.URL)
	require.NoError(t, err)
	return client
}
