package database

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/quality"
)

func newTestDB(t *testing.T) *ReportsDB {
	t.Helper()
	db, err := NewReportsDB(filepath.Join(t.TempDir(), "reports_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndGetReport(t *testing.T) {
	db := newTestDB(t)

	report := &Report{
		UUID:  uuid.New().String(),
		Files: []string{"data.csv", "book.xlsx"},
		Metrics: quality.Metrics{
			Completeness:     95.5,
			Consistency:      100,
			OverallIntegrity: 97.3,
			ValidRecords:     9,
			InvalidRecords:   1,
			TotalRecords:     10,
		},
		Summary:   "Overall Integrity: 97.3% (Completeness: 95.5%, Consistency: 100%)",
		CreatedAt: time.Now(),
	}

	require.NoError(t, db.SaveReport(report))

	got, err := db.GetReport(report.UUID)
	require.NoError(t, err)

	assert.Equal(t, report.UUID, got.UUID)
	assert.Equal(t, report.Files, got.Files)
	assert.Equal(t, report.Metrics, got.Metrics)
	assert.Equal(t, report.Summary, got.Summary)
	assert.WithinDuration(t, report.CreatedAt, got.CreatedAt, time.Second)
}

func TestGetReportNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetReport("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListReportsNewestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.SaveReport(&Report{
			UUID:      uuid.New().String(),
			Files:     []string{"f.csv"},
			Metrics:   quality.Metrics{TotalRecords: i},
			Summary:   "s",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	reports, err := db.ListReports(3)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, 4, reports[0].Metrics.TotalRecords)
	assert.Equal(t, 3, reports[1].Metrics.TotalRecords)
	assert.Equal(t, 2, reports[2].Metrics.TotalRecords)
}

func TestSaveReportDuplicateUUID(t *testing.T) {
	db := newTestDB(t)

	report := &Report{UUID: uuid.New().String(), Files: []string{}, CreatedAt: time.Now()}
	require.NoError(t, db.SaveReport(report))
	assert.Error(t, db.SaveReport(report))
}
