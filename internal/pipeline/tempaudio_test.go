package pipeline

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTempAudio(t *testing.T) {
	tmp, err := NewTempAudio()
	require.NoError(t, err)
	defer tmp.Cleanup()

	_, err = os.Stat(tmp.BasePath)
	assert.NoError(t, err, "base file must exist after creation")
	assert.Equal(t, tmp.BasePath+".mp3", tmp.MP3Path())
}

func TestTempAudioCleanupRemovesBothFiles(t *testing.T) {
	tmp, err := NewTempAudio()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(tmp.MP3Path(), []byte("audio"), 0o600))

	tmp.Cleanup()

	_, err = os.Stat(tmp.BasePath)
	assert.True(t, os.IsNotExist(err), "base file must be removed")
	_, err = os.Stat(tmp.MP3Path())
	assert.True(t, os.IsNotExist(err), "mp3 file must be removed")
}

func TestTempAudioCleanupIsIdempotent(t *testing.T) {
	tmp, err := NewTempAudio()
	require.NoError(t, err)

	tmp.Cleanup()
	assert.NotPanics(t, func() { tmp.Cleanup() })
}
