package handler

import (
	"quizclip/internal/domain"
	"quizclip/internal/dto"
	"quizclip/internal/logger"
	"quizclip/internal/middleware"
	"quizclip/internal/service"
	"quizclip/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// CreateQuiz handles POST /api/quizzes. It runs the full generation pipeline
// synchronously; the request blocks for the duration of download,
// transcription and generation.
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON with a url field")
	}
	if err := h.validator.ValidateCreateQuizRequest(req.URL); err != nil {
		return err
	}

	userID := c.Locals(middleware.UserIDKey).(string)
	logger.Get().Info("Creating quiz from URL",
		zap.String("url", req.URL),
		zap.String("user_id", userID))

	quiz, err := h.service.CreateQuizFromURL(c.Context(), req.URL, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// ListQuizzes handles GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	quizzes, err := h.service.GetUserQuizzes(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz handles GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	quiz, err := h.service.GetQuiz(c.Context(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// UpdateQuiz handles PATCH /api/quizzes/:id
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if err := h.validator.ValidateUpdateQuizRequest(req.Title, req.Description); err != nil {
		return err
	}

	userID := c.Locals(middleware.UserIDKey).(string)
	quiz, err := h.service.UpdateQuiz(c.Context(), c.Params("id"), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// DeleteQuiz handles DELETE /api/quizzes/:id
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	userID := c.Locals(middleware.UserIDKey).(string)

	if err := h.service.DeleteQuiz(c.Context(), c.Params("id"), userID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
