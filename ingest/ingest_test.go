package ingest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestFileCSV(t *testing.T) {
	csvContent := "name,amount,valid\nшуруп,10.5,true\nгайка,,false\n"

	table, err := File("upload.csv", []byte(csvContent))
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}

	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.RowCount())
	}
	if len(table.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %v", table.Columns)
	}

	if got := table.Cell(0, "name"); got != "шуруп" {
		t.Errorf("Expected name='шуруп', got %v", got)
	}
	if got := table.Cell(0, "amount"); got != float64(10.5) {
		t.Errorf("Expected amount=10.5 (float64), got %v (%T)", got, got)
	}
	if got := table.Cell(0, "valid"); got != true {
		t.Errorf("Expected valid=true (bool), got %v (%T)", got, got)
	}
	// Пустая ячейка CSV — null
	if got := table.Cell(1, "amount"); got != nil {
		t.Errorf("Expected null for empty cell, got %v", got)
	}
}

func TestFileCSVWindows1251(t *testing.T) {
	utf8Content := "название;статус\nГОСТ 12345;действующий\n"
	encoded, _, err := transform.Bytes(charmap.Windows1251.NewEncoder(), []byte(utf8Content))
	if err != nil {
		t.Fatalf("Failed to encode test fixture: %v", err)
	}

	table, err := File("legacy.csv", encoded)
	if err != nil {
		t.Fatalf("File() failed on Windows-1251 input: %v", err)
	}

	// Разделитель запятая, поэтому файл с ';' дает одну колонку —
	// важно лишь, что кириллица декодировалась без мусора
	if table.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", table.RowCount())
	}
	if got := table.Cell(0, table.Columns[0]); got != "ГОСТ 12345;действующий" {
		t.Errorf("Expected decoded cyrillic cell, got %v", got)
	}
}

func TestFileXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"b", "c"})
	_ = f.SetSheetRow(sheet, "A2", &[]interface{}{"5", "x"})
	_ = f.SetSheetRow(sheet, "A3", &[]interface{}{"", "y"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to build XLSX fixture: %v", err)
	}

	table, err := File("book.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}

	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.RowCount())
	}
	if got := table.Cell(0, "b"); got != float64(5) {
		t.Errorf("Expected b=5 (float64), got %v (%T)", got, got)
	}
	if got := table.Cell(1, "b"); got != nil {
		t.Errorf("Expected null for empty XLSX cell, got %v", got)
	}
}

func TestFilePDFOneRowPerPage(t *testing.T) {
	table, err := File("doc.pdf", buildEmptyPDF(3))
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}

	if table.RowCount() != 3 {
		t.Fatalf("Expected 3 rows (one per page), got %d", table.RowCount())
	}
	if len(table.Columns) != 1 || table.Columns[0] != ContentColumn {
		t.Fatalf("Expected single %q column, got %v", ContentColumn, table.Columns)
	}
	for i := 0; i < 3; i++ {
		if got := table.Cell(i, ContentColumn); got != "" {
			t.Errorf("Expected empty string for page %d without text, got %v", i+1, got)
		}
	}
}

func TestFileUnknownExtensionSkipped(t *testing.T) {
	table, err := File("notes.txt", []byte("whatever"))
	if err != nil {
		t.Fatalf("Unknown extension must not be an error, got %v", err)
	}
	if !table.IsEmpty() || len(table.Columns) != 0 {
		t.Errorf("Unknown extension must contribute no rows and no columns")
	}
}

func TestFileMalformedContent(t *testing.T) {
	if _, err := File("bad.xlsx", []byte("this is not a zip archive")); err == nil {
		t.Errorf("Expected error for corrupt XLSX")
	}
	if _, err := File("bad.pdf", []byte("%PDF-1.4 truncated")); err == nil {
		t.Errorf("Expected error for corrupt PDF")
	}
}

func TestFilesUnionsColumnsAcrossFormats(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"b", "c"})
	_ = f.SetSheetRow(sheet, "A2", &[]interface{}{"2", "3"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to build XLSX fixture: %v", err)
	}

	combined, err := Files([]NamedFile{
		{Name: "first.csv", Data: []byte("a,b\n1,2\n")},
		{Name: "second.xlsx", Data: buf.Bytes()},
	})
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}

	for i, want := range []string{"a", "b", "c"} {
		if combined.Columns[i] != want {
			t.Fatalf("Expected columns [a b c], got %v", combined.Columns)
		}
	}
	if combined.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", combined.RowCount())
	}
	if combined.Cell(0, "c") != nil {
		t.Errorf("CSV row must have null in column 'c'")
	}
	if combined.Cell(1, "a") != nil {
		t.Errorf("XLSX row must have null in column 'a'")
	}
}

func TestFilesFailsOnFirstMalformedFile(t *testing.T) {
	_, err := Files([]NamedFile{
		{Name: "ok.csv", Data: []byte("a\n1\n")},
		{Name: "broken.xlsx", Data: []byte("garbage")},
	})
	if err == nil {
		t.Fatalf("Expected error to propagate from malformed file")
	}
}

// buildEmptyPDF собирает минимальный валидный PDF c заданным числом
// пустых страниц (без текстового слоя)
func buildEmptyPDF(pages int) []byte {
	var buf bytes.Buffer
	offsets := make([]int, 0, 2*pages+3)

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", 3+i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids, pages))
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			3+i, 3+pages+i))
	}
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length 0 >>\nstream\nendstream\nendobj\n", 3+pages+i))
	}

	xrefOffset := buf.Len()
	total := len(offsets) + 1
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", total))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefOffset))

	return buf.Bytes()
}
