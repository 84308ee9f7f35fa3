package dataset

import (
	"fmt"
	"strings"
)

// Table плоская таблица в памяти: упорядоченные строки и упорядоченное
// объединение колонок всех загруженных файлов. Никаких индексов и
// ограничений уникальности — структура живет в рамках одного запроса.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row строка таблицы. Значение ячейки: string, float64, bool или nil (null).
// Отсутствие ключа эквивалентно nil.
type Row map[string]interface{}

// NewTable создает пустую таблицу (ноль строк, ноль колонок)
func NewTable() *Table {
	return &Table{}
}

// RowCount возвращает количество строк
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty проверяет, что таблица вырожденная (нет строк)
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// HasColumn проверяет наличие колонки по точному имени
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn добавляет колонку в конец, если её еще нет
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// AppendRow добавляет строку. Ячейки по колонкам, которых нет в строке,
// считаются null при чтении через Cell.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// Cell возвращает значение ячейки (nil для отсутствующей колонки)
func (t *Table) Cell(rowIdx int, column string) interface{} {
	if rowIdx < 0 || rowIdx >= len(t.Rows) {
		return nil
	}
	val, ok := t.Rows[rowIdx][column]
	if !ok {
		return nil
	}
	return val
}

// Append дописывает строки другой таблицы в конец текущей.
// Наборы колонок объединяются с сохранением порядка появления,
// дедупликации строк нет — порядок загрузки сохраняется.
func (t *Table) Append(other *Table) {
	if other == nil {
		return
	}
	// Колонки объединяются даже для таблицы без строк: файл с одним
	// заголовком все равно расширяет набор колонок
	for _, col := range other.Columns {
		t.AddColumn(col)
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// Fingerprint возвращает каноническое представление полного кортежа строки.
// Используется для поиска строк-дубликатов: совпадение всех ячеек по
// полному набору колонок таблицы.
func (t *Table) Fingerprint(rowIdx int) string {
	var sb strings.Builder
	for i, col := range t.Columns {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		val := t.Cell(rowIdx, col)
		if val == nil {
			sb.WriteString("\x00null")
			continue
		}
		// Тип участвует в отпечатке: "1" и 1.0 — разные значения
		sb.WriteString(fmt.Sprintf("%T:%v", val, val))
	}
	return sb.String()
}
