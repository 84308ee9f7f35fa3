// Package quality вычисляет метрики качества данных по таблице,
// собранной из загруженных файлов. Все вычисления — чистые однопроходные
// редукции без состояния между вызовами.
package quality

import (
	"math"

	"dashboard/dataset"
)

// ValidColumn имя колонки с явным флагом валидности записи
const ValidColumn = "valid"

// Policy константы расчета метрик. Веса интегральной оценки и доля
// валидных записей по умолчанию — иллюстративные значения, поэтому
// вынесены в настройку, а не зашиты в алгоритм.
type Policy struct {
	CompletenessWeight float64 // вес полноты в интегральной оценке
	ConsistencyWeight  float64 // вес согласованности в интегральной оценке
	ValidFallbackRatio float64 // доля валидных записей при отсутствии колонки valid
}

// DefaultPolicy возвращает параметры расчета по умолчанию: 0.6/0.4/0.9
func DefaultPolicy() Policy {
	return Policy{
		CompletenessWeight: 0.6,
		ConsistencyWeight:  0.4,
		ValidFallbackRatio: 0.9,
	}
}

// Metrics результат расчета качества данных по одной таблице.
// Процентные поля округлены до двух знаков, счетчики целые.
type Metrics struct {
	Completeness     float64 `json:"completeness"`
	Consistency      float64 `json:"consistency"`
	OverallIntegrity float64 `json:"overall_integrity"`
	ValidRecords     int     `json:"valid_records"`
	InvalidRecords   int     `json:"invalid_records"`
	TotalRecords     int     `json:"total_records"`
}

// Calculate вычисляет метрики с параметрами по умолчанию
func Calculate(table *dataset.Table) Metrics {
	return CalculateWithPolicy(table, DefaultPolicy())
}

// CalculateWithPolicy вычисляет метрики качества:
//   - completeness: процент непустых ячеек по всей таблице
//   - consistency: 100 минус процент строк-дубликатов
//   - overall_integrity: взвешенная сумма первых двух
//   - valid/invalid_records: сумма колонки valid либо оценка по доле
//
// Пустая таблица дает нулевой результат по всем полям.
func CalculateWithPolicy(table *dataset.Table, policy Policy) Metrics {
	totalRecords := table.RowCount()
	if totalRecords == 0 {
		return Metrics{}
	}

	completeness := completenessPercent(table)
	consistency := 100 - duplicatePercent(table)
	overall := policy.CompletenessWeight*completeness + policy.ConsistencyWeight*consistency

	validRecords := validRecordCount(table, policy)

	return Metrics{
		Completeness:     round2(completeness),
		Consistency:      round2(consistency),
		OverallIntegrity: round2(overall),
		ValidRecords:     validRecords,
		InvalidRecords:   totalRecords - validRecords,
		TotalRecords:     totalRecords,
	}
}

// completenessPercent доля непустых ячеек по всем строкам и колонкам, 0-100
func completenessPercent(table *dataset.Table) float64 {
	totalCells := table.RowCount() * len(table.Columns)
	if totalCells == 0 {
		return 0
	}

	nonNull := 0
	for i := range table.Rows {
		for _, col := range table.Columns {
			if table.Cell(i, col) != nil {
				nonNull++
			}
		}
	}
	return float64(nonNull) / float64(totalCells) * 100
}

// duplicatePercent доля строк, полный кортеж которых уже встречался
// раньше (первое вхождение дубликатом не считается), 0-100
func duplicatePercent(table *dataset.Table) float64 {
	seen := make(map[string]struct{}, table.RowCount())
	duplicates := 0
	for i := range table.Rows {
		fp := table.Fingerprint(i)
		if _, ok := seen[fp]; ok {
			duplicates++
			continue
		}
		seen[fp] = struct{}{}
	}
	return float64(duplicates) / float64(table.RowCount()) * 100
}

// validRecordCount считает валидные записи: сумма по колонке valid,
// если она есть (true и ненулевые числа дают 1), иначе фиксированная
// доля от общего числа строк со стандартным округлением.
func validRecordCount(table *dataset.Table, policy Policy) int {
	if !table.HasColumn(ValidColumn) {
		return int(math.Round(policy.ValidFallbackRatio * float64(table.RowCount())))
	}

	sum := 0
	for i := range table.Rows {
		switch v := table.Cell(i, ValidColumn).(type) {
		case bool:
			if v {
				sum++
			}
		case float64:
			if v != 0 {
				sum++
			}
		}
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
