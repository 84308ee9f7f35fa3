// Package charts собирает отображаемые артефакты из рассчитанных метрик:
// текстовую сводку и спецификации диаграмм. Сама отрисовка выполняется
// на стороне браузера, сервер отдает только данные.
package charts

import (
	"fmt"

	"dashboard/quality"
)

// Статусы цикла загрузки, отображаемые в интерфейсе
const (
	StatusAwaitingUpload = "Upload your files to see results."
	StatusCalculated     = "Metrics successfully calculated."
)

// PieSpec спецификация круговой диаграммы
type PieSpec struct {
	Title      string    `json:"title"`
	Labels     []string  `json:"labels"`
	Values     []int     `json:"values"`
	Colors     []string  `json:"colors"`
	Annotation string    `json:"annotation"`
}

// BarSpec спецификация столбчатой диаграммы
type BarSpec struct {
	Title  string    `json:"title"`
	YLabel string    `json:"y_label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

// Summary текстовая сводка интегральной оценки с составляющими
func Summary(m quality.Metrics) string {
	return fmt.Sprintf("Overall Integrity: %v%% (Completeness: %v%%, Consistency: %v%%)",
		m.OverallIntegrity, m.Completeness, m.Consistency)
}

// ValidityPie круговая диаграмма валидных и невалидных записей
func ValidityPie(m quality.Metrics) PieSpec {
	return PieSpec{
		Title:      "Valid vs Invalid Records",
		Labels:     []string{"Valid", "Invalid"},
		Values:     []int{m.ValidRecords, m.InvalidRecords},
		Colors:     []string{"#2ecc71", "#e74c3c"},
		Annotation: fmt.Sprintf("Valid: %d, Invalid: %d", m.ValidRecords, m.InvalidRecords),
	}
}

// MetricsBar столбчатая диаграмма полноты и согласованности
func MetricsBar(m quality.Metrics) BarSpec {
	return BarSpec{
		Title:  "Integrity Metrics",
		YLabel: "Percentage",
		Labels: []string{"Completeness", "Consistency"},
		Values: []float64{m.Completeness, m.Consistency},
		Colors: []string{"#3498db", "#f39c12"},
	}
}
