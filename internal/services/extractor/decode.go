package extractor

import (
	"github.com/clamc/trustee/internal/models"
)

// DecodeSection converts a section's data rows into positions tagged with
// the section's kind and treatment. Data rows are the rows strictly
// between the header row and the section's trailing total row. Columns
// whose canonical name is blank are skipped.
func DecodeSection(sec Section) ([]*models.Position, error) {
	names, headerIdx, err := resolveHeaders(sec)
	if err != nil {
		return nil, err
	}

	// Last row is the section total, never a holding.
	data := sec.Rows[headerIdx+1:]
	if len(data) > 0 {
		data = data[:len(data)-1]
	}

	positions := make([]*models.Position, 0, len(data))
	for _, row := range data {
		p := models.NewPosition(sec.Kind, sec.Treatment)
		for col, name := range names {
			if name == "" || col >= len(row) {
				continue
			}
			p.Set(name, row[col])
		}
		p.Set(models.FieldType, models.TextValue(string(sec.Kind)))
		p.Set(models.FieldAccounting, models.TextValue(string(sec.Treatment)))
		positions = append(positions, p)
	}
	return positions, nil
}
