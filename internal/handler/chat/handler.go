package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"health-assistant-api/internal/middleware"
	"health-assistant-api/internal/model"
	"health-assistant-api/internal/service/chat"
	"health-assistant-api/internal/session"
)

type Handler struct {
	service *chat.Service
	store   session.Store
}

func NewHandler(service *chat.Service, store session.Store) *Handler {
	return &Handler{service: service, store: store}
}

// Ask forwards the question to the assistant and returns the reply with the
// updated history. The service never fails; transport errors here are only
// session-store problems.
func (h *Handler) Ask(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	ctx := c.Request.Context()

	history, err := h.store.History(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	answer, updated := h.service.HandleMessage(ctx, req.Question, history)

	// Empty input appends nothing; everything else appends the new user and
	// assistant turns.
	if len(updated) > len(history) {
		if err := h.store.Append(ctx, sessionID, updated[len(history):]...); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": model.ChatResponse{
		Answer:  answer,
		History: updated,
	}})
}

func (h *Handler) History(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)

	history, err := h.store.History(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": model.ChatResponse{History: history}})
}

func (h *Handler) Clear(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)

	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": model.ChatResponse{History: []model.ChatTurn{}}})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat")
	{
		chat.POST("", h.Ask)
		chat.GET("", h.History)
		chat.POST("/clear", h.Clear)
	}
}
