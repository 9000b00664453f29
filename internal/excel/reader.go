// Package excel reads workbook sheets into grids of raw cell values and
// writes ordered rows to delimited files. It is the only I/O surface of
// the extraction pipeline.
package excel

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/clamc/trustee/internal/models"
)

// ReadGrid reads the first sheet of the workbook at path into an ordered
// sequence of rows. Every row is padded to the sheet's maximum width so
// downstream column indexing never runs short. Text cells have internal
// newlines normalized to single spaces; cells whose raw content parses as
// a number are returned as numeric values (dates stay as their serial
// ordinals).
func ReadGrid(path string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}

	width := 0
	for _, r := range raw {
		if len(r) > width {
			width = len(r)
		}
	}

	rows := make([]models.Row, 0, len(raw))
	for _, r := range raw {
		row := make(models.Row, width)
		for i := range row {
			if i < len(r) {
				row[i] = toValue(r[i])
			} else {
				row[i] = models.BlankValue()
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toValue(cell string) models.Value {
	if cell == "" {
		return models.BlankValue()
	}
	if d, err := decimal.NewFromString(cell); err == nil {
		return models.NumberValue(d)
	}
	return models.TextValue(normalizeNewlines(cell))
}

// normalizeNewlines collapses any run of line breaks inside cell text to
// a single space.
func normalizeNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
	return strings.Join(fields, " ")
}
