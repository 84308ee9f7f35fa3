package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"dashboard/dataset"
)

// parseExcel разбирает первый лист книги XLSX.
// Первая строка листа — заголовок, остальные — данные.
func parseExcel(raw []byte) (*dataset.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть XLSX: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("в книге XLSX нет листов")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать лист %q: %w", sheetName, err)
	}

	table := dataset.NewTable()
	if len(rows) == 0 {
		return table, nil
	}

	header := rows[0]
	for _, col := range header {
		table.AddColumn(col)
	}

	for _, record := range rows[1:] {
		table.AppendRow(rowFromRecord(header, record))
	}

	return table, nil
}
