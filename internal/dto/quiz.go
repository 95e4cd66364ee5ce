package dto

import "time"

// CreateQuizRequest is the body for POST /api/quizzes
type CreateQuizRequest struct {
	URL string `json:"url"`
}

// UpdateQuizRequest is the body for PATCH /api/quizzes/:id
type UpdateQuizRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// QuizQuestionResponse represents one question of a quiz
type QuizQuestionResponse struct {
	ID            string   `json:"id"`
	QuestionTitle string   `json:"question_title"`
	Options       []string `json:"question_options"`
	Answer        string   `json:"answer"`
}

// QuizResponse represents a quiz with its questions
type QuizResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	VideoURL    string                 `json:"video_url"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Questions   []QuizQuestionResponse `json:"questions"`
}

// QuizListResponse wraps a user's quizzes
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// ErrorResponse is a minimal error body used by handlers
type ErrorResponse struct {
	Error string `json:"error"`
}
