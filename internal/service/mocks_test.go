package service

import (
	"context"
	"time"

	"quizclip/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockQuizCreator struct {
	mock.Mock
}

func (m *mockQuizCreator) CreateQuizFromURL(ctx context.Context, url, userID string) (*domain.Quiz, error) {
	args := m.Called(ctx, url, userID)
	if quiz, ok := args.Get(0).(*domain.Quiz); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockQuizRepository struct {
	mock.Mock
}

func (m *mockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *mockQuizRepository) SaveQuestions(ctx context.Context, questions []*domain.QuizQuestion) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *mockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if quiz, ok := args.Get(0).(*domain.Quiz); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuizRepository) GetQuizzesByUserID(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	args := m.Called(ctx, userID)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *mockQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
