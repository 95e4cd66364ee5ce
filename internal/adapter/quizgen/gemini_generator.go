package quizgen

import (
	"context"
	"sync"

	"quizclip/internal/config"
	"quizclip/internal/domain"
	"quizclip/internal/pipeline"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiGenerator implements pipeline.QuizGenerator using the langchaingo
// Google AI client with a fixed model identifier. It returns the raw textual
// response; content validation belongs to the response parser.
type GeminiGenerator struct {
	cfg    config.GeminiConfig
	logger *zap.Logger

	once    sync.Once
	llm     llms.Model
	initErr error
}

// NewGeminiGenerator creates a generator. The underlying client is
// constructed lazily on first use.
func NewGeminiGenerator(cfg config.GeminiConfig, logger *zap.Logger) *GeminiGenerator {
	return &GeminiGenerator{cfg: cfg, logger: logger}
}

// NewGeminiGeneratorWithModel wires an already-constructed LLM. Used by tests
// to substitute a fake model.
func NewGeminiGeneratorWithModel(model llms.Model, cfg config.GeminiConfig, logger *zap.Logger) *GeminiGenerator {
	g := &GeminiGenerator{cfg: cfg, logger: logger}
	g.once.Do(func() { g.llm = model })
	return g
}

// Generate sends the prompt to the generation service. A missing API key is a
// configuration error surfaced before any network call.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.APIKey == "" && g.llm == nil {
		return "", domain.NewPipelineFailure("missing Gemini API key in configuration", nil)
	}

	g.once.Do(func() {
		g.logger.Info("Initializing Gemini client", zap.String("model", g.cfg.Model))
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(g.cfg.APIKey),
			googleai.WithDefaultModel(g.cfg.Model),
		)
		if err != nil {
			g.initErr = domain.NewPipelineFailuref(err, "failed to initialize Gemini client: %v", err)
			return
		}
		g.llm = llm
	})
	if g.initErr != nil {
		return "", g.initErr
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return "", domain.NewPipelineFailuref(err, "error calling generation service: %v", err)
	}

	g.logger.Debug("Raw generation response received", zap.Int("response_len", len(response)))
	return response, nil
}

var _ pipeline.QuizGenerator = (*GeminiGenerator)(nil)
