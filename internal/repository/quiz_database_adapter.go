package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizclip/internal/domain"
	"quizclip/internal/repository/models"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx over
// postgres. Every method resolves its executor through GetExecutor so calls
// inside TransactionManager.WithTransaction join the active transaction.
type QuizDatabaseAdapter struct {
	db DBTX
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db DBTX) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// SaveQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	exec := GetExecutor(ctx, a.db)

	model := toModelQuiz(quiz)
	query := `INSERT INTO quizzes (id, title, description, video_url, user_id, created_at, updated_at)
		VALUES (:id, :title, :description, :video_url, :user_id, :created_at, :updated_at)`

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}
	return nil
}

// SaveQuestions implements domain.QuizRepository. sqlx expands the named
// statement into a multi-row VALUES clause, so all questions land in one
// round trip.
func (a *QuizDatabaseAdapter) SaveQuestions(ctx context.Context, questions []*domain.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	exec := GetExecutor(ctx, a.db)

	rows := make([]models.QuizQuestion, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, toModelQuestion(q))
	}

	query := `INSERT INTO quiz_questions (id, quiz_id, question_title, question_options, answer, created_at, updated_at)
		VALUES (:id, :quiz_id, :question_title, :question_options, :answer, :created_at, :updated_at)`

	if _, err := exec.NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to insert quiz questions: %w", err)
	}
	return nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuiz models.Quiz
	query := `SELECT id, title, description, video_url, user_id, created_at, updated_at
		FROM quizzes WHERE id = $1`

	if err := exec.GetContext(ctx, &modelQuiz, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}

	var modelQuestions []models.QuizQuestion
	questionQuery := `SELECT id, quiz_id, question_title, question_options, answer, created_at, updated_at
		FROM quiz_questions WHERE quiz_id = $1 ORDER BY id`

	if err := exec.SelectContext(ctx, &modelQuestions, questionQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get quiz questions: %w", err)
	}

	return toDomainQuiz(&modelQuiz, modelQuestions), nil
}

// GetQuizzesByUserID implements domain.QuizRepository. Questions are loaded
// with a single join query and grouped in memory.
func (a *QuizDatabaseAdapter) GetQuizzesByUserID(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuizzes []models.Quiz
	query := `SELECT id, title, description, video_url, user_id, created_at, updated_at
		FROM quizzes WHERE user_id = $1 ORDER BY created_at DESC`

	if err := exec.SelectContext(ctx, &modelQuizzes, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get quizzes for user: %w", err)
	}
	if len(modelQuizzes) == 0 {
		return []*domain.Quiz{}, nil
	}

	var modelQuestions []models.QuizQuestion
	questionQuery := `SELECT qq.id, qq.quiz_id, qq.question_title, qq.question_options, qq.answer, qq.created_at, qq.updated_at
		FROM quiz_questions qq
		JOIN quizzes q ON q.id = qq.quiz_id
		WHERE q.user_id = $1
		ORDER BY qq.quiz_id, qq.id`

	if err := exec.SelectContext(ctx, &modelQuestions, questionQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to get quiz questions for user: %w", err)
	}

	byQuiz := make(map[string][]models.QuizQuestion, len(modelQuizzes))
	for _, q := range modelQuestions {
		byQuiz[q.QuizID] = append(byQuiz[q.QuizID], q)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i], byQuiz[modelQuizzes[i].ID]))
	}
	return quizzes, nil
}

// UpdateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	exec := GetExecutor(ctx, a.db)

	query := `UPDATE quizzes SET title = $1, description = $2, updated_at = $3 WHERE id = $4`
	result, err := exec.ExecContext(ctx, query, quiz.Title, quiz.Description, quiz.UpdatedAt, quiz.ID)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return domain.NewQuizNotFoundError(quiz.ID)
	}
	return nil
}

// DeleteQuiz implements domain.QuizRepository. Question rows cascade via the
// FK constraint.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)

	result, err := exec.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		VideoURL:    quiz.VideoURL,
		UserID:      quiz.UserID,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}

func toModelQuestion(q *domain.QuizQuestion) models.QuizQuestion {
	return models.QuizQuestion{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionTitle: q.QuestionTitle,
		Options:       models.StringSlice(q.Options),
		Answer:        q.Answer,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func toDomainQuiz(m *models.Quiz, questions []models.QuizQuestion) *domain.Quiz {
	quiz := &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		VideoURL:    m.VideoURL,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range questions {
		q := questions[i]
		quiz.Questions = append(quiz.Questions, &domain.QuizQuestion{
			ID:            q.ID,
			QuizID:        q.QuizID,
			QuestionTitle: q.QuestionTitle,
			Options:       []string(q.Options),
			Answer:        q.Answer,
			CreatedAt:     q.CreatedAt,
			UpdatedAt:     q.UpdatedAt,
		})
	}
	return quiz
}
