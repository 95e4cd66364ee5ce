package pipeline

import "context"

// AudioFetcher downloads a video's best audio stream and transcodes it to MP3
// at the handle's derived path. On any failure it deletes partial temporary
// files through the handle and returns a PIPELINE_FAILURE wrapping the cause.
// No retries happen at this layer.
type AudioFetcher interface {
	Fetch(ctx context.Context, url string, tmp *TempAudio) error
}

// Transcriber converts an audio file into plain text. Implementations hold
// process-wide state (a memoized engine) initialized once on first use.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// QuizGenerator sends a prompt to the generation service and returns its raw
// textual response without validating content.
type QuizGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TranscriptCache stores transcripts keyed by normalized source URL so a
// repeated URL can skip download and transcription. Optional collaborator;
// the pipeline runs without one.
type TranscriptCache interface {
	Get(ctx context.Context, url string) (string, error)
	Set(ctx context.Context, url string, transcript string) error
}
