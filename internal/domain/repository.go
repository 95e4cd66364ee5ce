package domain

import "context"

// QuizRepository defines the interface (port) for quiz persistence.
type QuizRepository interface {
	// SaveQuiz inserts a quiz row. The quiz must carry an ID.
	SaveQuiz(ctx context.Context, quiz *Quiz) error

	// SaveQuestions bulk-inserts question rows referencing their quiz.
	SaveQuestions(ctx context.Context, questions []*QuizQuestion) error

	// GetQuizByID returns a quiz with its questions, or nil when absent.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// GetQuizzesByUserID returns the user's quizzes, newest first, with
	// questions preloaded.
	GetQuizzesByUserID(ctx context.Context, userID string) ([]*Quiz, error)

	// UpdateQuiz persists owner-initiated title/description edits.
	UpdateQuiz(ctx context.Context, quiz *Quiz) error

	// DeleteQuiz removes a quiz; its questions cascade.
	DeleteQuiz(ctx context.Context, id string) error
}

// TransactionManager runs a function inside a database transaction. The
// transaction is carried through the context so repository calls inside fn
// join it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
