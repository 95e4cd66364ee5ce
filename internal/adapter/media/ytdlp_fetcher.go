package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"quizclip/internal/domain"
	"quizclip/internal/pipeline"

	"go.uber.org/zap"
)

// YtDlpFetcher implements pipeline.AudioFetcher by shelling out to yt-dlp,
// which downloads the best available audio stream and transcodes it to MP3
// through its ffmpeg postprocessor.
type YtDlpFetcher struct {
	binary string
	logger *zap.Logger
}

// NewYtDlpFetcher creates a fetcher using the given yt-dlp binary path.
func NewYtDlpFetcher(binary string, logger *zap.Logger) *YtDlpFetcher {
	if binary == "" {
		binary = "yt-dlp"
	}
	return &YtDlpFetcher{binary: binary, logger: logger}
}

// Fetch downloads the URL's audio to tmp.BasePath and leaves an MP3 at
// tmp.MP3Path(). On any failure partial files are removed through the handle
// and the cause is wrapped in a PIPELINE_FAILURE. Exactly one file remains on
// disk on success.
func (f *YtDlpFetcher) Fetch(ctx context.Context, url string, tmp *pipeline.TempAudio) error {
	args := []string{
		"--format", "bestaudio/best",
		"--output", tmp.BasePath + ".%(ext)s",
		"--quiet",
		"--no-playlist",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		url,
	}

	cmd := exec.CommandContext(ctx, f.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	f.logger.Debug("Running yt-dlp", zap.String("binary", f.binary), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		tmp.Cleanup()
		return domain.NewPipelineFailuref(err, "error downloading audio: %v%s", err, stderrTail(stderr.String()))
	}

	// yt-dlp writes BasePath+".mp3" via its postprocessor; the transcoder can
	// fail without a non-zero exit in odd configurations, so verify the file.
	if _, err := os.Stat(tmp.MP3Path()); err != nil {
		tmp.Cleanup()
		return domain.NewPipelineFailuref(err, "error downloading audio: no MP3 produced at %s", tmp.MP3Path())
	}
	return nil
}

// stderrTail keeps the last few lines of yt-dlp's stderr; the tail carries
// the actionable message (geoblock, format, network).
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return fmt.Sprintf(" (stderr: %s)", strings.Join(lines, " | "))
}

var _ pipeline.AudioFetcher = (*YtDlpFetcher)(nil)
