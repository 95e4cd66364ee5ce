package pipeline

import (
	"context"

	"quizclip/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockAudioFetcher struct {
	mock.Mock
}

func (m *mockAudioFetcher) Fetch(ctx context.Context, url string, tmp *TempAudio) error {
	args := m.Called(ctx, url, tmp)
	return args.Error(0)
}

type mockTranscriber struct {
	mock.Mock
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := m.Called(ctx, audioPath)
	return args.String(0), args.Error(1)
}

type mockQuizGenerator struct {
	mock.Mock
}

func (m *mockQuizGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockTranscriptCache struct {
	mock.Mock
}

func (m *mockTranscriptCache) Get(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

func (m *mockTranscriptCache) Set(ctx context.Context, url string, transcript string) error {
	args := m.Called(ctx, url, transcript)
	return args.Error(0)
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

// mockTransactionManager runs the callback in-line so repository expectations
// fire with the same context the pipeline supplied.
type mockTransactionManager struct {
	mock.Mock
}

func (m *mockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, mock.Anything)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
