package handlers

import (
	"github.com/KartikSaxena19/LearnILmWorld/internal/dto"
	"github.com/KartikSaxena19/LearnILmWorld/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	validate        *validator.Validate
	logger          *zap.Logger
}

func NewFeedbackHandler(feedbackService *service.FeedbackService, validate *validator.Validate, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		validate:        validate,
		logger:          logger,
	}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Submit a bug report, feature request or general feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if _, err := h.feedbackService.SubmitFeedback(c.Context(), &req); err != nil {
		h.logger.Error("Failed to save feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save feedback",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback submitted"})
}

// ListFeedback godoc
// @Summary List feedback
// @Description List all submitted feedback, newest first (admin only)
// @Tags feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /api/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	items, err := h.feedbackService.ListFeedback(c.Context())
	if err != nil {
		h.logger.Error("Failed to list feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list feedback",
		})
	}

	return c.JSON(items)
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Description Delete a feedback entry by id (admin only)
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid feedback id",
		})
	}

	if err := h.feedbackService.DeleteFeedback(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete feedback", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete feedback",
		})
	}

	return c.JSON(fiber.Map{"message": "Feedback deleted"})
}

// SubmitApplication godoc
// @Summary Submit a career application
// @Description Apply for a role at LearnILmWorld
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.CareerApplicationRequest true "Career application request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/careers [post]
func (h *FeedbackHandler) SubmitApplication(c *fiber.Ctx) error {
	var req dto.CareerApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if _, err := h.feedbackService.SubmitApplication(c.Context(), &req); err != nil {
		h.logger.Error("Failed to save career application", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Application submitted"})
}

// ListApplications godoc
// @Summary List career applications
// @Description List all career applications, newest first (admin only)
// @Tags careers
// @Produce json
// @Success 200 {array} models.CareerApplication
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /api/careers [get]
func (h *FeedbackHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.feedbackService.ListApplications(c.Context())
	if err != nil {
		h.logger.Error("Failed to list career applications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(apps)
}
