package service

import (
	"context"
	"strings"
	"time"

	"quizclip/internal/domain"
	"quizclip/internal/dto"
	"quizclip/internal/logger"

	"go.uber.org/zap"
)

// QuizCreator is the pipeline entry point the service delegates creation to.
type QuizCreator interface {
	CreateQuizFromURL(ctx context.Context, url, userID string) (*domain.Quiz, error)
}

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuizFromURL(ctx context.Context, url, userID string) (*dto.QuizResponse, error)
	GetUserQuizzes(ctx context.Context, userID string) (*dto.QuizListResponse, error)
	GetQuiz(ctx context.Context, id, userID string) (*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, id, userID string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id, userID string) error
}

// quizService implements QuizService
type quizService struct {
	creator QuizCreator
	repo    domain.QuizRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(creator QuizCreator, repo domain.QuizRepository) QuizService {
	return &quizService{
		creator: creator,
		repo:    repo,
	}
}

// CreateQuizFromURL runs the generation pipeline for the given URL and owner.
func (s *quizService) CreateQuizFromURL(ctx context.Context, url, userID string) (*dto.QuizResponse, error) {
	quiz, err := s.creator.CreateQuizFromURL(ctx, url, userID)
	if err != nil {
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

// GetUserQuizzes lists the user's quizzes with questions preloaded.
func (s *quizService) GetUserQuizzes(ctx context.Context, userID string) (*dto.QuizListResponse, error) {
	quizzes, err := s.repo.GetQuizzesByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	resp := &dto.QuizListResponse{Quizzes: make([]dto.QuizResponse, 0, len(quizzes))}
	for _, quiz := range quizzes {
		resp.Quizzes = append(resp.Quizzes, *toQuizResponse(quiz))
	}
	return resp, nil
}

// GetQuiz returns one quiz, enforcing ownership.
func (s *quizService) GetQuiz(ctx context.Context, id, userID string) (*dto.QuizResponse, error) {
	quiz, err := s.ownedQuiz(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

// UpdateQuiz applies owner-initiated title/description edits. The description
// length limit stays advisory, as in the generation prompt.
func (s *quizService) UpdateQuiz(ctx context.Context, id, userID string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.ownedQuiz(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		quiz.Title = title
	}
	if req.Description != "" {
		quiz.Description = req.Description
	}
	quiz.UpdatedAt = time.Now()

	if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to update quiz", err)
	}

	logger.Get().Info("Quiz updated", zap.String("quiz_id", id), zap.String("user_id", userID))
	return toQuizResponse(quiz), nil
}

// DeleteQuiz removes a quiz and, via cascade, its questions.
func (s *quizService) DeleteQuiz(ctx context.Context, id, userID string) error {
	if _, err := s.ownedQuiz(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		return domain.NewInternalError("Failed to delete quiz", err)
	}
	logger.Get().Info("Quiz deleted", zap.String("quiz_id", id), zap.String("user_id", userID))
	return nil
}

func (s *quizService) ownedQuiz(ctx context.Context, id, userID string) (*domain.Quiz, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	if quiz.UserID != userID {
		return nil, domain.NewForbiddenError("You do not own this quiz")
	}
	return quiz, nil
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	resp := &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		VideoURL:    quiz.VideoURL,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
		Questions:   make([]dto.QuizQuestionResponse, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			ID:            q.ID,
			QuestionTitle: q.QuestionTitle,
			Options:       q.Options,
			Answer:        q.Answer,
		})
	}
	return resp
}
