package extractor

import (
	"regexp"
	"strings"

	"github.com/clamc/trustee/internal/models"
)

// Section is one contiguous block of report rows under a Roman-numeral
// heading, e.g. "IV. Debt Securities - Held for Maturity HKD". Kind and
// Treatment are derived once from the heading text.
type Section struct {
	Heading   string
	Kind      models.SecurityType
	Treatment models.Treatment
	Rows      []models.Row
}

var (
	sectionStart = regexp.MustCompile(`^[IVX]+\.\s+`)

	kindCash   = regexp.MustCompile(`\sCash\s`)
	kindBond   = regexp.MustCompile(`\sDebt Securities\s`)
	kindEquity = regexp.MustCompile(`\sEquities\s`)

	treatTrading = regexp.MustCompile(`\sHeld for Trading`)
	treatAFS     = regexp.MustCompile(`\sAvailable for Sales`)
	treatHTM     = regexp.MustCompile(`\sHeld for Maturity`)
)

// Segment splits report rows into sections. Empty rows are dropped first;
// rows before the first heading form a discarded preamble (see Preamble).
// A sheet with no headings yields no sections, which callers treat as
// "nothing to extract".
func Segment(rows []models.Row) []Section {
	var sections []Section
	var current *Section
	for _, row := range rows {
		if emptyRow(row) {
			continue
		}
		if heading, ok := startOfSection(row); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			kind, treatment := sectionInfo(heading)
			current = &Section{
				Heading:   heading,
				Kind:      kind,
				Treatment: treatment,
				Rows:      []models.Row{row},
			}
			continue
		}
		if current != nil {
			current.Rows = append(current.Rows, row)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// Preamble returns the non-empty rows preceding the first section
// heading. The segmenter discards them; the file extractor scans them
// for the portfolio code and valuation date.
func Preamble(rows []models.Row) []models.Row {
	var pre []models.Row
	for _, row := range rows {
		if emptyRow(row) {
			continue
		}
		if _, ok := startOfSection(row); ok {
			break
		}
		pre = append(pre, row)
	}
	return pre
}

// emptyRow reports whether every cell among the first min(20, width)
// cells is either non-text or blank text.
func emptyRow(row models.Row) bool {
	n := len(row)
	if n > 20 {
		n = 20
	}
	for i := 0; i < n; i++ {
		c := row[i]
		if c.IsNumber() {
			return false
		}
		if c.IsText() && strings.TrimSpace(c.Text) != "" {
			return false
		}
	}
	return true
}

func startOfSection(row models.Row) (string, bool) {
	if len(row) == 0 || !row[0].IsText() {
		return "", false
	}
	if sectionStart.MatchString(row[0].Text) {
		return row[0].Text, true
	}
	return "", false
}

func sectionInfo(heading string) (models.SecurityType, models.Treatment) {
	kind := models.SecurityUnknown
	switch {
	case kindCash.MatchString(heading):
		kind = models.SecurityCash
	case kindBond.MatchString(heading):
		kind = models.SecurityBond
	case kindEquity.MatchString(heading):
		kind = models.SecurityEquity
	}

	treatment := models.TreatmentUnknown
	switch {
	case treatTrading.MatchString(heading):
		treatment = models.TreatmentTrading
	case treatAFS.MatchString(heading):
		treatment = models.TreatmentAFS
	case treatHTM.MatchString(heading):
		treatment = models.TreatmentHTM
	}
	return kind, treatment
}
