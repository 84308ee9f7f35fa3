package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dashboard/database"
	apperrors "dashboard/server/errors"
)

// ReportsHandler обработчик истории отчетов о качестве
type ReportsHandler struct {
	reportsDB *database.ReportsDB
}

// NewReportsHandler создает обработчик истории отчетов
func NewReportsHandler(reportsDB *database.ReportsDB) *ReportsHandler {
	return &ReportsHandler{reportsDB: reportsDB}
}

// HandleListReports обработчик списка отчетов
// @Summary Получить последние отчеты о качестве
// @Description Возвращает последние сохраненные отчеты, новые первыми
// @Tags reports
// @Produce json
// @Param limit query int false "Максимум отчетов (по умолчанию 20)"
// @Success 200 {array} database.Report "Список отчетов"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/reports [get]
func (h *ReportsHandler) HandleListReports(c *gin.Context) {
	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			SendJSONError(c, http.StatusBadRequest, "неверный формат limit")
			return
		}
		limit = parsed
	}

	reports, err := h.reportsDB.ListReports(limit)
	if err != nil {
		appErr := apperrors.WrapError(err, "не удалось получить список отчетов")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	if reports == nil {
		reports = []*database.Report{}
	}

	SendJSONResponse(c, http.StatusOK, reports)
}

// HandleGetReport обработчик получения отчета по UUID
// @Summary Получить отчет о качестве по UUID
// @Description Возвращает сохраненный отчет одного цикла загрузки
// @Tags reports
// @Produce json
// @Param uuid path string true "UUID отчета"
// @Success 200 {object} database.Report "Отчет"
// @Failure 404 {object} ErrorResponse "Отчет не найден"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/reports/{uuid} [get]
func (h *ReportsHandler) HandleGetReport(c *gin.Context) {
	reportUUID := c.Param("uuid")

	report, err := h.reportsDB.GetReport(reportUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			SendJSONError(c, http.StatusNotFound, "Отчет не найден")
			return
		}
		appErr := apperrors.WrapError(err, "не удалось получить отчет")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, report)
}
