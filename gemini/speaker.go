package gemini

import (
	"context"
	"fmt"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/fs"
	"google.golang.org/genai"
)

// Speech defaults. The TTS model returns raw 16-bit mono PCM at 24 kHz.
const (
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice       = "Kore"
	DefaultChunkBytes  = 3000

	SampleRate    = 24000
	Channels      = 1
	BitsPerSample = 16
)

// Ensure Speaker implements medical.AudioRenderer at compile time.
var _ medical.AudioRenderer = (*Speaker)(nil)

// Speaker renders article digests to WAV files using Gemini
// text-to-speech.
type Speaker struct {
	client     *genai.Client
	layout     fs.Layout
	model      string
	voice      string
	segmenter  medical.Segmenter
	chunkBytes int
}

// SpeakerOption configures a Speaker.
type SpeakerOption func(*Speaker)

// WithSpeechModel overrides DefaultSpeechModel.
func WithSpeechModel(model string) SpeakerOption {
	return func(s *Speaker) {
		s.model = model
	}
}

// WithVoice overrides DefaultVoice.
func WithVoice(voice string) SpeakerOption {
	return func(s *Speaker) {
		s.voice = voice
	}
}

// WithSegmenter sets the sentence splitter used for chunking.
func WithSegmenter(seg medical.Segmenter) SpeakerOption {
	return func(s *Speaker) {
		s.segmenter = seg
	}
}

// WithChunkBytes bounds the text sent in a single synthesis request.
func WithChunkBytes(n int) SpeakerOption {
	return func(s *Speaker) {
		s.chunkBytes = n
	}
}

// NewSpeaker creates a Speaker writing below layout.
func NewSpeaker(client *genai.Client, layout fs.Layout, opts ...SpeakerOption) *Speaker {
	s := &Speaker{
		client:     client,
		layout:     layout,
		model:      DefaultSpeechModel,
		voice:      DefaultVoice,
		segmenter:  medical.HeuristicSegmenter{},
		chunkBytes: DefaultChunkBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RenderAudio synthesizes the digest's speech text and writes it to the
// layout's audio path.
func (s *Speaker) RenderAudio(ctx context.Context, d *medical.Digest) error {
	if err := d.Article.Validate(); err != nil {
		return err
	}

	chunks := ChunkText(s.segmenter, medical.SpeechText(d), s.chunkBytes)

	var pcm []byte
	for i, chunk := range chunks {
		data, err := s.synthesize(ctx, chunk)
		if err != nil {
			return fmt.Errorf("synthesize chunk %d/%d of %s: %w", i+1, len(chunks), d.Article.ID, err)
		}
		pcm = append(pcm, data...)
	}

	wav := EncodeWAV(pcm, SampleRate, Channels, BitsPerSample)
	return fs.WriteFile(s.layout.AudioPath(d.Category, d.Article.Title, ".wav"), wav)
}

func (s *Speaker) synthesize(ctx context.Context, text string) ([]byte, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: text}},
		}},
		BuildSpeechConfig(s.voice),
	)
	if err != nil {
		return nil, err
	}
	return AudioData(result)
}

// BuildSpeechConfig returns the GenerateContentConfig requesting audio
// output in the given prebuilt voice.
func BuildSpeechConfig(voice string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voice,
				},
			},
		},
	}
}

// AudioData concatenates the inline audio parts of a response.
func AudioData(result *genai.GenerateContentResponse) ([]byte, error) {
	if result == nil {
		return nil, medical.Errorf(medical.EINTERNAL, "gemini returned nil result")
	}

	var pcm []byte
	for _, c := range result.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p != nil && p.InlineData != nil {
				pcm = append(pcm, p.InlineData.Data...)
			}
		}
		if len(pcm) > 0 {
			break
		}
	}

	if len(pcm) == 0 {
		return nil, medical.Errorf(medical.EINTERNAL, "gemini returned no audio")
	}
	return pcm, nil
}
