package ingest

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"dashboard/dataset"
)

// ContentColumn имя единственной колонки таблицы, собранной из PDF
const ContentColumn = "content"

// parsePDF извлекает текст постранично: одна строка таблицы на страницу
// документа, колонка content. Страница без извлекаемого текста дает
// пустую строку (не null).
func parsePDF(raw []byte) (*dataset.Table, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть PDF: %w", err)
	}

	table := dataset.NewTable()
	table.AddColumn(ContentColumn)

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)

		var text string
		if !page.V.IsNull() {
			// Ошибка извлечения с отдельной страницы не валит документ:
			// страница считается пустой, как и страница без текстового слоя
			if extracted, err := page.GetPlainText(nil); err == nil {
				text = extracted
			}
		}

		table.AppendRow(dataset.Row{ContentColumn: text})
	}

	return table, nil
}
