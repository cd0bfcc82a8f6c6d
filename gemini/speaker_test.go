package gemini_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/fs"
	"github.com/ghulammustafashad/medical/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// Ensure Speaker implements medical.AudioRenderer at compile time.
var _ medical.AudioRenderer = (*gemini.Speaker)(nil)

func testDigest() *medical.Digest {
	sections := medical.NewSectionMap()
	sections.Set("Introduction", "Spinal anaesthesia is common. It is safe.")
	return &medical.Digest{
		Category: "anesthesiology",
		Article:  &medical.Article{ID: "PMC1", Title: "Spinal anaesthesia"},
		Abstract: "Short abstract.",
		Sections: sections,
	}
}

func TestSpeaker_RenderAudio(t *testing.T) {
	t.Parallel()

	t.Run("writes WAV with synthesized PCM", func(t *testing.T) {
		t.Parallel()

		pcm := []byte{1, 0, 2, 0, 3, 0}
		api := &fakeAPI{respond: func(int) (int, string) {
			return http.StatusOK, audioResponse(pcm)
		}}
		layout := fs.NewLayout(t.TempDir())
		s := gemini.NewSpeaker(newTestClient(t, api), layout)

		err := s.RenderAudio(context.Background(), testDigest())
		require.NoError(t, err)

		data, err := os.ReadFile(layout.AudioPath("anesthesiology", "Spinal anaesthesia", ".wav"))
		require.NoError(t, err)
		assert.Equal(t, "RIFF", string(data[0:4]))
		assert.Equal(t, pcm, data[44:])
		assert.Equal(t, 1, api.count())
		assert.Contains(t, api.requests[0], "Summary: Spinal anaesthesia")
		assert.Contains(t, api.requests[0], "Kore")
	})

	t.Run("chunks long text and concatenates audio", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{respond: func(n int) (int, string) {
			return http.StatusOK, audioResponse([]byte{byte(n), 0})
		}}
		layout := fs.NewLayout(t.TempDir())
		s := gemini.NewSpeaker(newTestClient(t, api), layout, gemini.WithChunkBytes(40))

		err := s.RenderAudio(context.Background(), testDigest())
		require.NoError(t, err)

		data, err := os.ReadFile(layout.AudioPath("anesthesiology", "Spinal anaesthesia", ".wav"))
		require.NoError(t, err)

		calls := api.count()
		require.Greater(t, calls, 1)
		var want []byte
		for i := 1; i <= calls; i++ {
			want = append(want, byte(i), 0)
		}
		assert.Equal(t, want, data[44:])
	})

	t.Run("API error is returned and no file written", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{respond: func(int) (int, string) {
			return http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`
		}}
		layout := fs.NewLayout(t.TempDir())
		s := gemini.NewSpeaker(newTestClient(t, api), layout)

		err := s.RenderAudio(context.Background(), testDigest())

		require.Error(t, err)
		_, statErr := os.Stat(layout.AudioPath("anesthesiology", "Spinal anaesthesia", ".wav"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("rejects article without title", func(t *testing.T) {
		t.Parallel()

		d := testDigest()
		d.Article.Title = ""

		err := gemini.NewSpeaker(nil, fs.NewLayout(t.TempDir())).RenderAudio(context.Background(), d)

		assert.Equal(t, medical.EINVALID, medical.ErrorCode(err))
	})
}

func TestBuildSpeechConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSpeechConfig("Puck")

	assert.Equal(t, []string{"AUDIO"}, config.ResponseModalities)
	require.NotNil(t, config.SpeechConfig)
	assert.Equal(t, "Puck", config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestAudioData(t *testing.T) {
	t.Parallel()

	t.Run("concatenates inline parts", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{InlineData: &genai.Blob{Data: []byte{1, 2}}},
					{Text: "ignored"},
					{InlineData: &genai.Blob{Data: []byte{3}}},
				}},
			}},
		}

		got, err := gemini.AudioData(resp)

		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, got)
	})

	t.Run("no audio is an error", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry"}}},
			}},
		}

		_, err := gemini.AudioData(resp)

		assert.Equal(t, medical.EINTERNAL, medical.ErrorCode(err))
	})

	t.Run("nil response is an error", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.AudioData(nil)

		assert.Equal(t, medical.EINTERNAL, medical.ErrorCode(err))
	})
}

func TestEncodeWAV(t *testing.T) {
	t.Parallel()

	pcm := bytes.Repeat([]byte{0x10, 0x20}, 100)

	wav := gemini.EncodeWAV(pcm, gemini.SampleRate, gemini.Channels, gemini.BitsPerSample)

	require.Len(t, wav, 44+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]))
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(wav[28:32]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[32:34]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestChunkText(t *testing.T) {
	t.Parallel()

	seg := medical.HeuristicSegmenter{}

	t.Run("keeps short text in one chunk", func(t *testing.T) {
		t.Parallel()

		got := gemini.ChunkText(seg, "One. Two.", 100)

		assert.Equal(t, []string{"One. Two."}, got)
	})

	t.Run("breaks on sentence boundaries", func(t *testing.T) {
		t.Parallel()

		got := gemini.ChunkText(seg, "First sentence. Second sentence. Third sentence.", 34)

		assert.Equal(t, []string{"First sentence. Second sentence.", "Third sentence."}, got)
	})

	t.Run("splits oversized sentence between words", func(t *testing.T) {
		t.Parallel()

		got := gemini.ChunkText(seg, "alpha beta gamma delta", 11)

		assert.Equal(t, []string{"alpha beta", "gamma delta"}, got)
		for _, c := range got {
			assert.LessOrEqual(t, len(c), 11)
		}
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, gemini.ChunkText(seg, "   ", 10))
	})

	t.Run("preserves every word", func(t *testing.T) {
		t.Parallel()

		text := medical.SpeechText(testDigest())

		got := gemini.ChunkText(seg, text, 20)

		assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(got, " ")))
	})
}
