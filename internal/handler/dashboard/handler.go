package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"health-assistant-api/internal/service/dashboard"
)

const snapshotKey = "snapshot"

// Handler serves the dashboard snapshot. The service is a pure query, so a
// short-lived cache in front of it is safe.
type Handler struct {
	service *dashboard.Service
	cache   *cache.Cache
}

func NewHandler(service *dashboard.Service, cacheTTL time.Duration) *Handler {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &Handler{
		service: service,
		cache:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (h *Handler) GetDashboard(c *gin.Context) {
	if snapshot, found := h.cache.Get(snapshotKey); found {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": snapshot})
		return
	}

	snapshot, err := h.service.Build(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.cache.SetDefault(snapshotKey, snapshot)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": snapshot})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetDashboard)
}
