package harvest_test

import (
	"context"
	"testing"
	"time"

	"github.com/ghulammustafashad/medical"
	"github.com/ghulammustafashad/medical/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements medical.HostLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ medical.HostLimiter = harvest.NewHostLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewHostLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.ncbi.nlm.nih.gov")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same host", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewHostLimiter(10) // 100ms between requests

		err := limiter.Wait(context.Background(), "www.ncbi.nlm.nih.gov")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "www.ncbi.nlm.nih.gov")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewHostLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "b.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "other host should not wait")
	})

	t.Run("returns error when context canceled", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewHostLimiter(0.1) // one request every 10s

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "example.com")
		require.Error(t, err)
	})
}
