package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/database"
	"dashboard/quality"
)

func newReportsRouter(t *testing.T) (*gin.Engine, *database.ReportsDB) {
	t.Helper()
	reportsDB, err := database.NewReportsDB(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { reportsDB.Close() })

	router := setupGinTestRouter()
	handler := NewReportsHandler(reportsDB)
	router.GET("/api/reports", handler.HandleListReports)
	router.GET("/api/reports/:uuid", handler.HandleGetReport)
	return router, reportsDB
}

func TestHandleListReports(t *testing.T) {
	router, reportsDB := newReportsRouter(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, reportsDB.SaveReport(&database.Report{
			UUID:      uuid.New().String(),
			Files:     []string{"f.csv"},
			Metrics:   quality.Metrics{TotalRecords: i},
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	req, _ := http.NewRequest("GET", "/api/reports?limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var reports []*database.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, 2, reports[0].Metrics.TotalRecords)
}

func TestHandleListReportsEmpty(t *testing.T) {
	router, _ := newReportsRouter(t)

	req, _ := http.NewRequest("GET", "/api/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandleListReportsBadLimit(t *testing.T) {
	router, _ := newReportsRouter(t)

	req, _ := http.NewRequest("GET", "/api/reports?limit=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetReport(t *testing.T) {
	router, reportsDB := newReportsRouter(t)

	report := &database.Report{
		UUID:      uuid.New().String(),
		Files:     []string{"data.csv"},
		Metrics:   quality.Metrics{Completeness: 100, TotalRecords: 5},
		Summary:   "s",
		CreatedAt: time.Now(),
	}
	require.NoError(t, reportsDB.SaveReport(report))

	req, _ := http.NewRequest("GET", "/api/reports/"+report.UUID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got database.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, report.UUID, got.UUID)
	assert.Equal(t, report.Metrics, got.Metrics)
}

func TestHandleGetReportNotFound(t *testing.T) {
	router, _ := newReportsRouter(t)

	req, _ := http.NewRequest("GET", "/api/reports/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
