package handlers

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dashboard/charts"
	"dashboard/database"
	"dashboard/ingest"
	"dashboard/quality"
	apperrors "dashboard/server/errors"
)

// DashboardHandler обработчик цикла загрузки: файлы -> таблица ->
// метрики -> артефакты для отображения. Состояние между запросами
// не хранится, каждый запрос обсчитывается с нуля.
type DashboardHandler struct {
	policy         quality.Policy
	maxUploadBytes int64
	reportsDB      *database.ReportsDB
}

// NewDashboardHandler создает обработчик дашборда.
// reportsDB может быть nil — тогда история отчетов не ведется.
func NewDashboardHandler(policy quality.Policy, maxUploadBytes int64, reportsDB *database.ReportsDB) *DashboardHandler {
	return &DashboardHandler{
		policy:         policy,
		maxUploadBytes: maxUploadBytes,
		reportsDB:      reportsDB,
	}
}

// DashboardResponse результат одного цикла загрузки
type DashboardResponse struct {
	Status   string          `json:"status"`
	ReportID string          `json:"report_id,omitempty"`
	Metrics  quality.Metrics `json:"metrics"`
	Summary  string          `json:"summary"`
	PieChart charts.PieSpec  `json:"pie_chart"`
	BarChart charts.BarSpec  `json:"bar_chart"`
}

// HandleUpload обработчик загрузки файлов
// @Summary Загрузить файлы и рассчитать метрики качества
// @Description Принимает CSV/XLSX/PDF файлы, объединяет их в одну таблицу и возвращает метрики целостности с данными для диаграмм. Файлы с другими расширениями молча пропускаются.
// @Tags dashboard
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Файлы для анализа (поле можно повторять)"
// @Success 200 {object} DashboardResponse "Метрики и спецификации диаграмм"
// @Failure 400 {object} ErrorResponse "Поврежденный файл распознанного формата"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/dashboard/upload [post]
func (h *DashboardHandler) HandleUpload(c *gin.Context) {
	// Парсим multipart/form-data
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		SendJSONError(c, http.StatusBadRequest, "Не удалось распарсить форму")
		return
	}

	form := c.Request.MultipartForm
	var headers = form.File["files"]

	// Без файлов — не ошибка, а исходное состояние дашборда
	if len(headers) == 0 {
		SendJSONResponse(c, http.StatusOK, h.buildResponse(quality.Metrics{}, "", charts.StatusAwaitingUpload))
		return
	}

	files := make([]ingest.NamedFile, 0, len(headers))
	fileNames := make([]string, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			SendJSONError(c, http.StatusBadRequest, "Не удалось открыть файл "+header.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			SendJSONError(c, http.StatusBadRequest, "Не удалось прочитать файл "+header.Filename)
			return
		}
		files = append(files, ingest.NamedFile{Name: header.Filename, Data: data})
		fileNames = append(fileNames, header.Filename)
	}

	table, err := ingest.Files(files)
	if err != nil {
		appErr := apperrors.NewValidationError(err.Error(), err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	metrics := quality.CalculateWithPolicy(table, h.policy)

	reportID := h.saveReport(fileNames, metrics)
	SendJSONResponse(c, http.StatusOK, h.buildResponse(metrics, reportID, charts.StatusCalculated))
}

// buildResponse собирает артефакты отображения из метрик
func (h *DashboardHandler) buildResponse(m quality.Metrics, reportID, status string) DashboardResponse {
	return DashboardResponse{
		Status:   status,
		ReportID: reportID,
		Metrics:  m,
		Summary:  charts.Summary(m),
		PieChart: charts.ValidityPie(m),
		BarChart: charts.MetricsBar(m),
	}
}

// saveReport пишет отчет в историю. Ошибка записи логируется,
// но не прерывает ответ: метрики уже рассчитаны.
func (h *DashboardHandler) saveReport(fileNames []string, metrics quality.Metrics) string {
	if h.reportsDB == nil {
		return ""
	}

	report := &database.Report{
		UUID:      uuid.New().String(),
		Files:     fileNames,
		Metrics:   metrics,
		Summary:   charts.Summary(metrics),
		CreatedAt: time.Now(),
	}
	if err := h.reportsDB.SaveReport(report); err != nil {
		log.Printf("⚠ Не удалось сохранить отчет в историю: %v", err)
		return ""
	}
	return report.UUID
}
