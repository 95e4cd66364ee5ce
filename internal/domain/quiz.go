package domain

import (
	"time"
)

// Quiz represents a generated quiz that belongs to a user.
// A quiz is created from a video URL and contains multiple related questions.
type Quiz struct {
	ID          string
	Title       string
	Description string
	VideoURL    string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Questions   []*QuizQuestion
}

// NewQuiz creates a new Quiz instance
func NewQuiz(title, description, videoURL, userID string) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:       title,
		Description: description,
		VideoURL:    videoURL,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewValidationError("title is required")
	}
	if q.VideoURL == "" {
		return NewValidationError("video_url is required")
	}
	if q.UserID == "" {
		return NewValidationError("user_id is required")
	}
	return nil
}

// QuizQuestion represents a single multiple-choice question within a quiz.
// It stores exactly four distinct options and the correct answer as a string
// that byte-exactly matches one of the options.
type QuizQuestion struct {
	ID            string
	QuizID        string
	QuestionTitle string
	Options       []string
	Answer        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewQuizQuestion creates a new QuizQuestion instance
func NewQuizQuestion(quizID, questionTitle string, options []string, answer string) *QuizQuestion {
	now := time.Now()
	return &QuizQuestion{
		QuizID:        quizID,
		QuestionTitle: questionTitle,
		Options:       options,
		Answer:        answer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate checks the question invariants: non-empty title, exactly 4
// pairwise-distinct options, and an answer equal to one of the options.
func (q *QuizQuestion) Validate() error {
	if q.QuestionTitle == "" {
		return NewValidationError("question_title is required")
	}
	if len(q.Options) != 4 {
		return NewValidationError("exactly 4 options are required")
	}
	seen := make(map[string]struct{}, 4)
	for _, opt := range q.Options {
		seen[opt] = struct{}{}
	}
	if len(seen) != 4 {
		return NewValidationError("options must be distinct")
	}
	if _, ok := seen[q.Answer]; !ok {
		return NewValidationError("answer must be one of the options")
	}
	return nil
}

// QuizPayload is the parsed, not-yet-persisted quiz content returned by the
// generation service. It exists only between parsing and persistence.
type QuizPayload struct {
	Title       string
	Description string
	Questions   []QuestionPayload
}

// QuestionPayload is a single question entry within a QuizPayload.
type QuestionPayload struct {
	QuestionTitle string
	Options       []string
	Answer        string
}

// ToQuiz maps the payload into a Quiz aggregate for the given source URL and
// owner. Question rows are created without IDs; the persistence step assigns
// them.
func (p *QuizPayload) ToQuiz(videoURL, userID string) *Quiz {
	quiz := NewQuiz(p.Title, p.Description, videoURL, userID)
	for _, q := range p.Questions {
		quiz.Questions = append(quiz.Questions, NewQuizQuestion("", q.QuestionTitle, q.Options, q.Answer))
	}
	return quiz
}

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}
