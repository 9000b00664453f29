package excel

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/clamc/trustee/internal/models"
)

// WriteCSV writes rows to a comma-delimited file at path, one line per
// row, creating or truncating the file.
func WriteCSV(path string, rows []models.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		line := make([]string, len(row))
		for i, v := range row {
			line[i] = v.String()
		}
		if err := w.Write(line); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
