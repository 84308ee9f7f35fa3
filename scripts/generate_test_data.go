// Генератор тестовых CSV наборов для ручной проверки дашборда.
// Запуск: go run scripts/generate_test_data.go
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	// Инициализируем gofakeit
	gofakeit.Seed(0)

	sizes := []struct {
		name string
		size int
	}{
		{"small", 100},
		{"medium", 1000},
		{"large", 10000},
	}

	dataDir := filepath.Join("data", "test")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	for _, s := range sizes {
		path := filepath.Join(dataDir, fmt.Sprintf("records_%s.csv", s.name))
		if err := writeDataset(path, s.size); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("✓ Сгенерирован %s (%d строк)", path, s.size)
	}
}

// writeDataset пишет CSV с колонкой valid, долей пустых ячеек
// и небольшим числом строк-дубликатов — чтобы все метрики дашборда
// имели нетривиальные значения
func writeDataset(path string, rows int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"name", "email", "company", "amount", "valid"}); err != nil {
		return err
	}

	var prev []string
	for i := 0; i < rows; i++ {
		// Примерно каждая двадцатая строка — дубликат предыдущей
		if prev != nil && rand.Intn(20) == 0 {
			if err := w.Write(prev); err != nil {
				return err
			}
			continue
		}

		record := []string{
			gofakeit.Name(),
			maybeEmpty(gofakeit.Email(), 10),
			maybeEmpty(gofakeit.Company(), 5),
			strconv.FormatFloat(gofakeit.Price(10, 10000), 'f', 2, 64),
			strconv.Itoa(rand.Intn(2)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
		prev = record
	}

	return w.Error()
}

// maybeEmpty обнуляет значение с вероятностью 1/n
func maybeEmpty(value string, n int) string {
	if rand.Intn(n) == 0 {
		return ""
	}
	return value
}
