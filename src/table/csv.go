package table

import (
	"encoding/csv"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// ReadCSV loads a CSV file with a header row into a Table. delimiter must be
// a single character; pass "," for standard CSV.
func ReadCSV(filePath string, delimiter string) (*Table, error) {
	if len([]rune(delimiter)) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = []rune(delimiter)[0]
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv file %q: %w", filePath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %q has no header line", filePath)
	}

	t := NewTable(records[0])
	for _, record := range records[1:] {
		if err := t.AddRow(record); err != nil {
			return nil, fmt.Errorf("csv file %q: %w", filePath, err)
		}
	}
	log.Infof("loaded %d rows, %d columns from %q", t.RowCount(), len(t.columnNames), filePath)
	return t, nil
}

// WriteCSV stores the table as a CSV file with a header row.
func WriteCSV(t *Table, filePath string, delimiter string) error {
	if len([]rune(delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = []rune(delimiter)[0]

	if err := writer.Write(t.columnNames); err != nil {
		return err
	}
	for i := 0; i < t.RowCount(); i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write csv file %q: %w", filePath, err)
	}
	log.Infof("stored %d rows at %q", t.RowCount(), filePath)
	return nil
}
