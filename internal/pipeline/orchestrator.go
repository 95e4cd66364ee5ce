package pipeline

import (
	"context"
	"strings"

	"quizclip/internal/domain"
	"quizclip/internal/util"

	"go.uber.org/zap"
)

// Pipeline orchestrates one video-to-quiz run: URL validation, audio
// acquisition, transcription, generation, response validation, and
// transactional persistence. Stages run strictly in sequence; a failure in
// any stage aborts the run after temporary resources are released.
type Pipeline struct {
	fetcher     AudioFetcher
	transcriber Transcriber
	generator   QuizGenerator
	repo        domain.QuizRepository
	txManager   domain.TransactionManager
	transcripts TranscriptCache
	logger      *zap.Logger
}

// NewPipeline creates a Pipeline. transcripts may be nil, in which case every
// run downloads and transcribes from scratch.
func NewPipeline(
	fetcher AudioFetcher,
	transcriber Transcriber,
	generator QuizGenerator,
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	transcripts TranscriptCache,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher:     fetcher,
		transcriber: transcriber,
		generator:   generator,
		repo:        repo,
		txManager:   txManager,
		transcripts: transcripts,
		logger:      logger,
	}
}

// CreateQuizFromURL runs the full pipeline for one URL and owner. It returns
// the persisted Quiz aggregate, or a domain error of kind INVALID_SOURCE_URL
// (rejected before any resource allocation) or PIPELINE_FAILURE (any later
// stage). Temporary audio files are removed on every exit path.
func (p *Pipeline) CreateQuizFromURL(ctx context.Context, rawURL, userID string) (*domain.Quiz, error) {
	normalized := NormalizeVideoURL(rawURL)
	if !IsSupportedVideoURL(normalized) {
		return nil, domain.NewInvalidSourceURLError(normalized)
	}

	transcript, err := p.transcriptFor(ctx, normalized)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Generating quiz from transcript",
		zap.String("url", normalized),
		zap.Int("transcript_len", len(transcript)))

	raw, err := p.generator.Generate(ctx, BuildQuizPrompt(transcript))
	if err != nil {
		return nil, asPipelineFailure("error generating quiz", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewPipelineFailure("generation service returned an empty response", nil)
	}

	payload, err := ParseQuizPayload(raw)
	if err != nil {
		return nil, asPipelineFailure("error validating generated quiz", err)
	}

	quiz, err := p.persist(ctx, payload, normalized, userID)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.String("user_id", userID),
		zap.String("url", normalized))
	return quiz, nil
}

// transcriptFor returns the transcript for a normalized URL, consulting the
// transcript cache first. On a miss it downloads and transcribes the audio;
// the temporary handle is cleaned up regardless of outcome.
func (p *Pipeline) transcriptFor(ctx context.Context, url string) (string, error) {
	if p.transcripts != nil {
		if cached, err := p.transcripts.Get(ctx, url); err == nil && cached != "" {
			p.logger.Info("Transcript cache hit", zap.String("url", url))
			return cached, nil
		}
	}

	tmp, err := NewTempAudio()
	if err != nil {
		return "", domain.NewPipelineFailure("failed to allocate temporary audio file", err)
	}
	defer tmp.Cleanup()

	p.logger.Info("Downloading audio", zap.String("url", url), zap.String("base_path", tmp.BasePath))
	if err := p.fetcher.Fetch(ctx, url, tmp); err != nil {
		return "", asPipelineFailure("error downloading audio", err)
	}

	p.logger.Info("Transcribing audio", zap.String("mp3_path", tmp.MP3Path()))
	transcript, err := p.transcriber.Transcribe(ctx, tmp.MP3Path())
	if err != nil {
		tmp.Cleanup()
		return "", asPipelineFailure("error transcribing audio", err)
	}

	if p.transcripts != nil {
		if err := p.transcripts.Set(ctx, url, transcript); err != nil {
			p.logger.Warn("Failed to cache transcript", zap.Error(err), zap.String("url", url))
		}
	}
	return transcript, nil
}

// persist writes the validated payload as one quiz row plus its question rows
// inside a single transaction. Either both inserts commit or neither is
// visible.
func (p *Pipeline) persist(ctx context.Context, payload *domain.QuizPayload, videoURL, userID string) (*domain.Quiz, error) {
	quiz := payload.ToQuiz(videoURL, userID)
	quiz.ID = util.NewULID()
	for _, q := range quiz.Questions {
		q.ID = util.NewULID()
		q.QuizID = quiz.ID
	}

	err := p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := p.repo.SaveQuiz(txCtx, quiz); err != nil {
			return err
		}
		return p.repo.SaveQuestions(txCtx, quiz.Questions)
	})
	if err != nil {
		return nil, asPipelineFailure("error persisting quiz", err)
	}
	return quiz, nil
}

// asPipelineFailure passes domain errors through unchanged and coerces
// everything else into a PIPELINE_FAILURE with the stage context preserved in
// the message.
func asPipelineFailure(stage string, err error) error {
	if de, ok := err.(*domain.DomainError); ok {
		return de
	}
	return domain.NewPipelineFailuref(err, "%s: %v", stage, err)
}
