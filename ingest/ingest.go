// Package ingest декодирует загруженные файлы в табличную структуру.
// Поддерживаются CSV, XLSX и PDF; файлы с другими расширениями молча
// пропускаются. Парсинг делегирован готовым библиотекам, пакет лишь
// приводит их вывод к dataset.Table.
package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"dashboard/dataset"
)

// NamedFile загруженный файл: имя (для диспетчеризации по расширению)
// и сырые байты содержимого.
type NamedFile struct {
	Name string
	Data []byte
}

// File декодирует один файл в таблицу по расширению имени:
//   - .csv  — текст с разделителями, первая строка — заголовок
//   - .xlsx — первый лист книги, первая строка — заголовок
//   - .pdf  — одна строка на страницу, единственная колонка content
//
// Нераспознанное расширение — не ошибка: возвращается пустая таблица.
// Поврежденное содержимое распознанного формата — ошибка вызывающему.
func File(filename string, raw []byte) (*dataset.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(raw)
	case ".xlsx":
		return parseExcel(raw)
	case ".pdf":
		return parsePDF(raw)
	default:
		return dataset.NewTable(), nil
	}
}

// Files декодирует каждый файл отдельно и конкатенирует результаты
// в одну таблицу с объединением наборов колонок. Ошибка парсинга
// любого распознанного файла прерывает весь вызов.
func Files(files []NamedFile) (*dataset.Table, error) {
	combined := dataset.NewTable()
	for _, f := range files {
		tbl, err := File(f.Name, f.Data)
		if err != nil {
			return nil, fmt.Errorf("не удалось разобрать файл %q: %w", f.Name, err)
		}
		combined.Append(tbl)
	}
	return combined, nil
}

// parseCell приводит текстовую ячейку к типизированному значению.
// Пустая строка — null, числа — float64, true/false — bool,
// остальное остается строкой как есть.
func parseCell(text string) interface{} {
	if text == "" {
		return nil
	}
	if num, err := strconv.ParseFloat(text, 64); err == nil {
		return num
	}
	switch strings.ToLower(text) {
	case "true":
		return true
	case "false":
		return false
	}
	return text
}

// rowFromRecord собирает строку таблицы из среза ячеек по заголовку.
// Лишние ячейки за пределами заголовка игнорируются, недостающие
// остаются null.
func rowFromRecord(header []string, record []string) dataset.Row {
	row := make(dataset.Row, len(header))
	for i, col := range header {
		if i < len(record) {
			row[col] = parseCell(record[i])
		} else {
			row[col] = nil
		}
	}
	return row
}
