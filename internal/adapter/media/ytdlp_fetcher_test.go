package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quizclip/internal/domain"
	"quizclip/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeStubBinary drops an executable shell script standing in for yt-dlp.
func writeStubBinary(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yt-dlp-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

// stubProducingMP3 walks its arguments, finds the --output template and
// creates the MP3 the real postprocessor would leave behind.
const stubProducingMP3 = `
out=""
prev=""
for arg in "$@"; do
  if [ "$prev" = "--output" ]; then out="$arg"; fi
  prev="$arg"
done
mp3=$(printf '%s' "$out" | sed 's/\.%(ext)s$/.mp3/')
: > "$mp3"
`

func TestFetch(t *testing.T) {
	fetcher := NewYtDlpFetcher(writeStubBinary(t, stubProducingMP3), zap.NewNop())
	tmp, err := pipeline.NewTempAudio()
	require.NoError(t, err)
	defer tmp.Cleanup()

	err = fetcher.Fetch(context.Background(), "https://www.youtube.com/watch?v=abc123", tmp)

	require.NoError(t, err)
	_, statErr := os.Stat(tmp.MP3Path())
	assert.NoError(t, statErr, "MP3 should exist at the derived path")
}

func TestFetchBinaryMissing(t *testing.T) {
	fetcher := NewYtDlpFetcher("/nonexistent/yt-dlp", zap.NewNop())
	tmp, err := pipeline.NewTempAudio()
	require.NoError(t, err)

	err = fetcher.Fetch(context.Background(), "https://www.youtube.com/watch?v=abc123", tmp)

	require.Error(t, err)
	assert.True(t, domain.IsPipelineFailure(err))
	_, statErr := os.Stat(tmp.BasePath)
	assert.True(t, os.IsNotExist(statErr), "partial files should be cleaned up")
}

func TestFetchNonZeroExitIncludesStderr(t *testing.T) {
	fetcher := NewYtDlpFetcher(writeStubBinary(t, `
echo "WARNING: something benign" >&2
echo "ERROR: video unavailable in your region" >&2
exit 1
`), zap.NewNop())
	tmp, err := pipeline.NewTempAudio()
	require.NoError(t, err)

	err = fetcher.Fetch(context.Background(), "https://www.youtube.com/watch?v=abc123", tmp)

	require.Error(t, err)
	assert.True(t, domain.IsPipelineFailure(err))
	assert.Contains(t, err.Error(), "video unavailable in your region")
	_, statErr := os.Stat(tmp.MP3Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchNoMP3Produced(t *testing.T) {
	// Exits cleanly without writing anything, as a broken postprocessor would.
	fetcher := NewYtDlpFetcher(writeStubBinary(t, "exit 0"), zap.NewNop())
	tmp, err := pipeline.NewTempAudio()
	require.NoError(t, err)

	err = fetcher.Fetch(context.Background(), "https://www.youtube.com/watch?v=abc123", tmp)

	require.Error(t, err)
	assert.True(t, domain.IsPipelineFailure(err))
	assert.Contains(t, err.Error(), "no MP3 produced")
	_, statErr := os.Stat(tmp.BasePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchContextCancellation(t *testing.T) {
	fetcher := NewYtDlpFetcher(writeStubBinary(t, "sleep 10"), zap.NewNop())
	tmp, err := pipeline.NewTempAudio()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = fetcher.Fetch(ctx, "https://www.youtube.com/watch?v=abc123", tmp)

	require.Error(t, err)
	assert.True(t, domain.IsPipelineFailure(err))
}
