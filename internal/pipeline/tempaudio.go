package pipeline

import (
	"fmt"
	"os"
)

// TempAudio holds the temporary file paths used while acquiring audio for one
// pipeline run. The downloader writes to BasePath + an extension chosen by the
// transcoder; MP3Path is the derived path the rest of the pipeline reads.
type TempAudio struct {
	BasePath string
}

// NewTempAudio creates the temporary base file for an audio download. The
// actual audio is written by the downloader using this base path.
func NewTempAudio() (*TempAudio, error) {
	f, err := os.CreateTemp("", "quizclip-audio-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp audio file: %w", err)
	}
	return &TempAudio{BasePath: f.Name()}, nil
}

// MP3Path returns the expected MP3 file path derived from the base path.
func (t *TempAudio) MP3Path() string {
	return t.BasePath + ".mp3"
}

// Cleanup removes both temporary files. It is best-effort and idempotent:
// removal of a nonexistent file is not an error, and cleanup never fails the
// run it belongs to.
func (t *TempAudio) Cleanup() {
	safeRemove(t.BasePath)
	safeRemove(t.MP3Path())
}

func safeRemove(path string) {
	_ = os.Remove(path)
}
