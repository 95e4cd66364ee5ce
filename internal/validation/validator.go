package validation

import (
	"net/url"
	"strings"

	"quizclip/internal/domain"
)

const maxURLLength = 2048

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest validates the create-quiz request body. Host
// support is the pipeline's concern; this only rejects inputs that are not a
// URL at all.
func (v *Validator) ValidateCreateQuizRequest(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return domain.NewInvalidInputError("url is required")
	}
	if len(trimmed) > maxURLLength {
		return domain.NewInvalidInputError("url is too long")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return domain.NewInvalidInputError("url must be an absolute URL")
	}
	return nil
}

// ValidateUpdateQuizRequest validates owner edits. Title is bounded by the
// column size; description length is intentionally not enforced.
func (v *Validator) ValidateUpdateQuizRequest(title, description string) error {
	if strings.TrimSpace(title) == "" && description == "" {
		return domain.NewInvalidInputError("nothing to update")
	}
	if len(title) > 255 {
		return domain.NewInvalidInputError("title must be at most 255 characters")
	}
	return nil
}
