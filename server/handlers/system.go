package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler служебные эндпоинты сервера
type SystemHandler struct {
	startTime time.Time
	version   string
}

// NewSystemHandler создает обработчик служебных эндпоинтов
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		version:   version,
	}
}

// HealthResponse состояние сервера
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HandleHealth обработчик проверки состояния
// @Summary Проверить состояние сервера
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Состояние сервера"
// @Router /api/health [get]
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}
