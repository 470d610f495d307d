package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MetaHandler serves the API root, the health probe, and the fallback
// for unmapped paths.
type MetaHandler struct {
	db *gorm.DB
}

func NewMetaHandler(db *gorm.DB) *MetaHandler {
	return &MetaHandler{db: db}
}

// Root godoc
// @Summary API metadata
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Kaard Farm Management API",
		"version": "1.0.0",
		"status":  "Running",
		"endpoints": gin.H{
			"auth":       "/api/login, /api/setup-admin",
			"crops":      "/api/crops",
			"equipment":  "/api/equipment",
			"production": "/api/production",
			"vehicles":   "/api/vehicles",
			"stats":      "/api/stats",
		},
	})
}

// Health godoc
// @Summary Health probe
// @Description Report process liveness and storage reachability
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /api/health [get]
func (h *MetaHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}

// NotFound echoes the requested path back for unmapped routes.
func (h *MetaHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "Endpoint not found",
		Path:  c.Request.URL.Path,
	})
}
