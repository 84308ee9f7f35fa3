// Package database хранит историю отчетов о качестве данных в SQLite.
// История — сервисный слой поверх основного цикла загрузки: расчет
// метрик никогда не читает из этой базы.
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"dashboard/quality"
)

// ReportsDB обертка для работы с базой истории отчетов
type ReportsDB struct {
	conn *sql.DB
}

// Report сохраненный отчет о качестве: метрики одного цикла загрузки
// и имена файлов, по которым они были рассчитаны
type Report struct {
	UUID      string          `json:"uuid"`
	Files     []string        `json:"files"`
	Metrics   quality.Metrics `json:"metrics"`
	Summary   string          `json:"summary"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewReportsDB открывает (или создает) базу истории отчетов
func NewReportsDB(dbPath string) (*ReportsDB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу отчетов: %w", err)
	}

	db := &ReportsDB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Close закрывает соединение с базой
func (db *ReportsDB) Close() error {
	return db.conn.Close()
}

// migrate создает схему, если её еще нет
func (db *ReportsDB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS quality_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		files_json TEXT NOT NULL,
		metrics_json TEXT NOT NULL,
		summary TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_quality_reports_created_at
		ON quality_reports(created_at DESC);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("не удалось создать схему базы отчетов: %w", err)
	}
	return nil
}

// SaveReport сохраняет отчет. Ошибка записи не должна ломать цикл
// загрузки — вызывающий решает, логировать её или вернуть.
func (db *ReportsDB) SaveReport(report *Report) error {
	filesJSON, err := json.Marshal(report.Files)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать список файлов: %w", err)
	}
	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать метрики: %w", err)
	}

	_, err = db.conn.Exec(
		`INSERT INTO quality_reports (uuid, files_json, metrics_json, summary, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		report.UUID, string(filesJSON), string(metricsJSON), report.Summary,
		report.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("не удалось сохранить отчет %s: %w", report.UUID, err)
	}
	return nil
}

// GetReport возвращает отчет по UUID; sql.ErrNoRows если отчета нет
func (db *ReportsDB) GetReport(uuid string) (*Report, error) {
	row := db.conn.QueryRow(
		`SELECT uuid, files_json, metrics_json, summary, created_at
		 FROM quality_reports WHERE uuid = ?`, uuid)
	return scanReport(row)
}

// ListReports возвращает последние отчеты, новые первыми
func (db *ReportsDB) ListReports(limit int) ([]*Report, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(
		`SELECT uuid, files_json, metrics_json, summary, created_at
		 FROM quality_reports ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить список отчетов: %w", err)
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (*Report, error) {
	var report Report
	var filesJSON, metricsJSON, createdAt string

	if err := row.Scan(&report.UUID, &filesJSON, &metricsJSON, &report.Summary, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(filesJSON), &report.Files); err != nil {
		return nil, fmt.Errorf("поврежденный список файлов в отчете %s: %w", report.UUID, err)
	}
	if err := json.Unmarshal([]byte(metricsJSON), &report.Metrics); err != nil {
		return nil, fmt.Errorf("поврежденные метрики в отчете %s: %w", report.UUID, err)
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		// Старые записи могли сохраняться в формате SQLite по умолчанию
		parsed, err = time.Parse("2006-01-02 15:04:05", createdAt)
		if err != nil {
			log.Printf("Не удалось разобрать время создания отчета %s: %q", report.UUID, createdAt)
			parsed = time.Time{}
		}
	}
	report.CreatedAt = parsed

	return &report, nil
}
