package mock

import (
	"context"

	"github.com/ghulammustafashad/medical"
)

var _ medical.Excerpter = (*Excerpter)(nil)

// Excerpter is a mock implementation of medical.Excerpter.
type Excerpter struct {
	ExcerptFn func(ctx context.Context, text string, maxWords int) (string, error)
}

func (e *Excerpter) Excerpt(ctx context.Context, text string, maxWords int) (string, error) {
	return e.ExcerptFn(ctx, text, maxWords)
}
