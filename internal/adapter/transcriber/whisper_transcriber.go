package transcriber

import (
	"context"
	"strings"
	"sync"
	"time"

	"quizclip/internal/config"
	"quizclip/internal/domain"
	"quizclip/internal/pipeline"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// WhisperTranscriber implements pipeline.Transcriber against a Whisper
// speech-to-text endpoint. The heavyweight client is built once on first use
// and shared by every pipeline run in the process; it is never mutated after
// initialization, so concurrent runs only race on the sync.Once.
type WhisperTranscriber struct {
	cfg    config.WhisperConfig
	logger *zap.Logger

	once    sync.Once
	client  *openai.Client
	initErr error
}

// NewWhisperTranscriber creates a transcriber. The client is not built here;
// configuration is read once when the first transcription demands it.
func NewWhisperTranscriber(cfg config.WhisperConfig, logger *zap.Logger) *WhisperTranscriber {
	return &WhisperTranscriber{cfg: cfg, logger: logger}
}

func (t *WhisperTranscriber) engine() (*openai.Client, error) {
	t.once.Do(func() {
		if t.cfg.APIKey == "" {
			t.initErr = domain.NewPipelineFailure("missing Whisper API key in configuration", nil)
			return
		}
		clientCfg := openai.DefaultConfig(t.cfg.APIKey)
		if t.cfg.BaseURL != "" {
			clientCfg.BaseURL = t.cfg.BaseURL
		}
		t.logger.Info("Initializing Whisper client",
			zap.String("model", t.cfg.Model),
			zap.String("base_url", t.cfg.BaseURL))
		t.client = openai.NewClientWithConfig(clientCfg)
	})
	return t.client, t.initErr
}

// Transcribe runs speech-to-text on the audio file and returns the trimmed
// transcript. An engine error, or an empty/whitespace-only result, is a
// PIPELINE_FAILURE.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	client, err := t.engine()
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.cfg.Model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", domain.NewPipelineFailuref(err, "error transcribing audio: %v", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		return "", domain.NewPipelineFailure("transcription returned an empty transcript", nil)
	}

	t.logger.Info("Transcription finished",
		zap.String("audio_path", audioPath),
		zap.Duration("duration", time.Since(start)),
		zap.Int("transcript_len", len(transcript)))
	return transcript, nil
}

var _ pipeline.Transcriber = (*WhisperTranscriber)(nil)
