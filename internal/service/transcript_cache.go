package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"quizclip/internal/cache"
	"quizclip/internal/domain"
	"quizclip/internal/logger"

	"go.uber.org/zap"
)

// TranscriptCacheService stores transcripts keyed by normalized source URL so
// a repeated URL skips the download and transcription stages. It implements
// pipeline.TranscriptCache.
type TranscriptCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewTranscriptCacheService creates a transcript cache over the given Cache.
func NewTranscriptCacheService(c domain.Cache, ttl time.Duration) *TranscriptCacheService {
	return &TranscriptCacheService{cache: c, ttl: ttl}
}

// Get returns the cached transcript for a URL, or "" on a miss.
func (s *TranscriptCacheService) Get(ctx context.Context, url string) (string, error) {
	val, err := s.cache.Get(ctx, transcriptCacheKey(url))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return "", nil
		}
		logger.Get().Warn("Transcript cache get failed", zap.Error(err), zap.String("url", url))
		return "", err
	}
	return val, nil
}

// Set stores the transcript under the URL's key with the configured TTL.
func (s *TranscriptCacheService) Set(ctx context.Context, url string, transcript string) error {
	return s.cache.Set(ctx, transcriptCacheKey(url), transcript, s.ttl)
}

// transcriptCacheKey hashes the URL so keys stay flat regardless of the
// characters in the source URL.
func transcriptCacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return cache.GenerateCacheKey("pipeline", "transcript", hex.EncodeToString(sum[:]))
}
