package handlers

import (
	"github.com/KartikSaxena19/LearnILmWorld/internal/dto"
	"github.com/KartikSaxena19/LearnILmWorld/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, validate *validator.Validate, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validate:    validate,
		logger:      logger,
	}
}

// StartChat godoc
// @Summary Start a chat session
// @Description Create a new chatbot session seeded with a welcome message
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.StartChatRequest true "Start chat request"
// @Success 201 {object} dto.StartChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/chatbot/start [post]
func (h *ChatHandler) StartChat(c *fiber.Ctx) error {
	var req dto.StartChatRequest
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

	resp, err := h.chatService.StartChat(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to start chat session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start chat session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Send a message to the chatbot and receive a reply
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatMessageRequest true "Chat message request"
// @Success 200 {object} dto.ChatMessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chatbot/message [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
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

	resp, err := h.chatService.SendMessage(c.Context(), &req)
	if err != nil {
		if err == service.ErrSessionNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chat session not found",
			})
		}
		h.logger.Error("Failed to process chat message", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process chat message",
		})
	}

	return c.JSON(resp)
}

// History godoc
// @Summary Get chat history
// @Description Get the persisted conversation for a session
// @Tags chatbot
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 404 {object} map[string]string
// @Router /api/chatbot/history/{sessionId} [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	resp, err := h.chatService.History(c.Context(), sessionID)
	if err != nil {
		if err == service.ErrSessionNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chat session not found",
			})
		}
		h.logger.Error("Failed to load chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	return c.JSON(resp)
}

// SaveUser godoc
// @Summary Save chat user details
// @Description Attach contact details a visitor shared during a chat
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.SaveChatUserRequest true "Save user request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/chatbot/save-user [post]
func (h *ChatHandler) SaveUser(c *fiber.Ctx) error {
	var req dto.SaveChatUserRequest
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

	if err := h.chatService.SaveUser(c.Context(), &req); err != nil {
		if err == service.ErrSessionNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chat session not found",
			})
		}
		h.logger.Error("Failed to save chat user details", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save user details",
		})
	}

	return c.JSON(fiber.Map{"message": "User details saved"})
}

// Memory godoc
// @Summary Get in-memory session state
// @Description Get short-term history and derived context for a session
// @Tags chatbot
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.ChatMemoryResponse
// @Router /api/chatbot/memory/{sessionId} [get]
func (h *ChatHandler) Memory(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	return c.JSON(h.chatService.MemoryInfo(sessionID))
}

// DeleteSession godoc
// @Summary Delete a chat session
// @Description Remove a session's durable record and in-memory state
// @Tags chatbot
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} map[string]string
// @Router /api/chatbot/session/{sessionId} [delete]
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	if err := h.chatService.DeleteSession(c.Context(), sessionID); err != nil {
		h.logger.Error("Failed to delete chat session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete chat session",
		})
	}

	return c.JSON(fiber.Map{"message": "Chat session deleted"})
}
