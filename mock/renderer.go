package mock

import (
	"context"

	"github.com/ghulammustafashad/medical"
)

var _ medical.DocumentRenderer = (*DocumentRenderer)(nil)

// DocumentRenderer is a mock implementation of medical.DocumentRenderer.
type DocumentRenderer struct {
	RenderDocumentFn func(ctx context.Context, d *medical.Digest) error
}

func (r *DocumentRenderer) RenderDocument(ctx context.Context, d *medical.Digest) error {
	return r.RenderDocumentFn(ctx, d)
}

var _ medical.AudioRenderer = (*AudioRenderer)(nil)

// AudioRenderer is a mock implementation of medical.AudioRenderer.
type AudioRenderer struct {
	RenderAudioFn func(ctx context.Context, d *medical.Digest) error
}

func (r *AudioRenderer) RenderAudio(ctx context.Context, d *medical.Digest) error {
	return r.RenderAudioFn(ctx, d)
}
