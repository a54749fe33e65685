package vitalsign

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"health-assistant-api/internal/model"
	"health-assistant-api/internal/service/vitalsign"
	"health-assistant-api/pkg/httputil"
)

type Handler struct {
	service *vitalsign.Service
}

func NewHandler(service *vitalsign.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateVitalSign(c *gin.Context) {
	var req model.CreateVitalSignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	vital, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, vital)
}

func (h *Handler) GetVitalSign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid vital sign ID"})
		return
	}

	vital, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, vital)
}

func (h *Handler) ListVitalSigns(c *gin.Context) {
	var p model.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	vitals, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, vitals)
}

func (h *Handler) DeleteVitalSign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid vital sign ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	vitals := r.Group("/vitals")
	{
		vitals.POST("", h.CreateVitalSign)
		vitals.GET("", h.ListVitalSigns)
		vitals.GET("/:id", h.GetVitalSign)
		vitals.DELETE("/:id", h.DeleteVitalSign)
	}
}
