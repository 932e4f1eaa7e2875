package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/services"
)

// ChatHandler handles HTTP requests for claim chat threads and meetings
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterChatRoutes registers chat-related routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.GET("/chats/:chat_id/messages", h.GetMessages)
	g.POST("/chats/:chat_id/messages", h.PostMessage)
	g.GET("/chats/:chat_id/meetings", h.GetMeetings)
	g.POST("/chats/:chat_id/meetings", h.ScheduleMeeting)
	g.PUT("/meetings/:id/cancel", h.CancelMeeting)
}

// GetMessages returns a thread's messages in chronological order
func (h *ChatHandler) GetMessages(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	messages, err := h.chatService.Messages(c.Param("chat_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}

// PostMessage appends a message to a thread
func (h *ChatHandler) PostMessage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req models.PostChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.chatService.PostMessage(c.Param("chat_id"), user, req.Message, req.IsPreset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, message)
}

// GetMeetings returns a thread's meetings
func (h *ChatHandler) GetMeetings(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	meetings, err := h.chatService.Meetings(c.Param("chat_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, meetings)
}

// ScheduleMeeting creates a meeting and its announcement message
func (h *ChatHandler) ScheduleMeeting(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req models.ScheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	meeting, err := h.chatService.ScheduleMeeting(c.Param("chat_id"), user, req.Date, req.Location)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, meeting)
}

// CancelMeeting cancels a scheduled meeting
func (h *ChatHandler) CancelMeeting(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	meeting, err := h.chatService.CancelMeeting(c.Param("id"), user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, meeting)
}
