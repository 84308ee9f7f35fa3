// Утилита разового анализа: принимает пути к файлам, прогоняет их через
// тот же конвейер, что и сервер, и печатает метрики качества в консоль.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"dashboard/charts"
	"dashboard/ingest"
	"dashboard/quality"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.csv|file.xlsx|file.pdf> [more files...]\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	var files []ingest.NamedFile
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Не удалось прочитать файл %s: %v", path, err)
		}
		files = append(files, ingest.NamedFile{Name: filepath.Base(path), Data: data})
	}

	table, err := ingest.Files(files)
	if err != nil {
		log.Fatalf("Ошибка разбора: %v", err)
	}

	fmt.Printf("Files:   %d\n", len(files))
	fmt.Printf("Columns: %d %v\n", len(table.Columns), table.Columns)
	fmt.Printf("Rows:    %d\n\n", table.RowCount())

	metrics := quality.Calculate(table)

	fmt.Println(charts.Summary(metrics))
	fmt.Printf("Valid records:   %d\n", metrics.ValidRecords)
	fmt.Printf("Invalid records: %d\n", metrics.InvalidRecords)
}
