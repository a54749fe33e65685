package healthlog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"health-assistant-api/internal/model"
	"health-assistant-api/internal/service/healthlog"
	"health-assistant-api/pkg/httputil"
)

type Handler struct {
	service *healthlog.Service
}

func NewHandler(service *healthlog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateHealthLog(c *gin.Context) {
	var req model.CreateHealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	log, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, log)
}

func (h *Handler) GetHealthLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid health log ID"})
		return
	}

	log, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, log)
}

func (h *Handler) ListHealthLogs(c *gin.Context) {
	var p model.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	logs, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, logs)
}

func (h *Handler) UpdateHealthLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid health log ID"})
		return
	}

	var req model.UpdateHealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	log, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, log)
}

func (h *Handler) DeleteHealthLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid health log ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/health-logs")
	{
		logs.POST("", h.CreateHealthLog)
		logs.GET("", h.ListHealthLogs)
		logs.GET("/:id", h.GetHealthLog)
		logs.PUT("/:id", h.UpdateHealthLog)
		logs.DELETE("/:id", h.DeleteHealthLog)
	}
}
