package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"dashboard/dataset"
)

// parseCSV разбирает CSV: первая строка — заголовок, остальные — данные.
// Выгрузки из 1С и старого офиса часто приходят в Windows-1251, поэтому
// невалидный UTF-8 прогоняется через декодер 1251 перед парсингом.
func parseCSV(raw []byte) (*dataset.Table, error) {
	decoded, err := decodeToUTF8(raw)
	if err != nil {
		return nil, fmt.Errorf("не удалось декодировать CSV: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1 // допускаем строки разной длины

	header, err := reader.Read()
	if err == io.EOF {
		return dataset.NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать заголовок CSV: %w", err)
	}

	table := dataset.NewTable()
	for _, col := range header {
		table.AddColumn(col)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки CSV: %w", err)
		}
		table.AppendRow(rowFromRecord(header, record))
	}

	return table, nil
}

// decodeToUTF8 возвращает данные как валидный UTF-8.
// BOM отрезается, не-UTF-8 трактуется как Windows-1251.
func decodeToUTF8(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return raw, nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), raw)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(decoded) {
		return nil, fmt.Errorf("содержимое не является ни UTF-8, ни Windows-1251")
	}
	return decoded, nil
}
