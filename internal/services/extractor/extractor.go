package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clamc/trustee/internal/excel"
	"github.com/clamc/trustee/internal/models"
)

// Service runs the extraction pipeline for trustee report files.
type Service struct {
	aliases AliasResolver
}

// NewService creates an extraction service. aliases may be nil, in which
// case bond identifiers pass through unresolved.
func NewService(aliases AliasResolver) *Service {
	return &Service{aliases: aliases}
}

// FileToRecords reads the report at path and returns its normalized
// position records: segment, decode, merge HTM bond continuations,
// derive identifiers and dates, and stamp the portfolio code and
// valuation date found in the report preamble.
func (s *Service) FileToRecords(path string) ([]*models.Position, error) {
	rows, err := excel.ReadGrid(path)
	if err != nil {
		return nil, err
	}

	batch := uuid.New()
	entry := log.WithFields(logrus.Fields{"file": path, "batch": batch})

	records, err := s.RecordsFromGrid(rows)
	if err != nil {
		entry.WithError(err).Error("extraction failed")
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	entry.WithField("records", len(records)).Info("extracted holdings")
	return records, nil
}

// RecordsFromGrid runs the extraction pipeline over an already-read grid.
func (s *Service) RecordsFromGrid(rows []models.Row) ([]*models.Position, error) {
	portfolio, valuationDate := fileMeta(Preamble(rows))

	var records []*models.Position
	for _, sec := range Segment(rows) {
		positions, err := DecodeSection(sec)
		if err != nil {
			return nil, err
		}
		if sec.Kind == models.SecurityBond && sec.Treatment == models.TreatmentHTM {
			positions, err = MergeContinuations(positions)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", sec.Heading, err)
			}
		}
		for _, p := range positions {
			AddIdentifier(p, s.aliases)
			NormalizeDates(p)
			if portfolio != "" {
				p.Set(models.FieldPortfolio, models.TextValue(portfolio))
			}
			if valuationDate != "" {
				p.Set(models.FieldValuationDate, models.TextValue(valuationDate))
			}
		}
		records = append(records, positions...)
	}
	return records, nil
}

var (
	portfolioInline = regexp.MustCompile(`(?i)^(?:portfolio|fund)\b[^0-9]*?([0-9]{4,6})\s*$`)
	portfolioTag    = regexp.MustCompile(`(?i)^(?:portfolio|fund)\s*(?:no\.?|code|number)\s*[:：]?\s*$`)
	valuationLabel  = regexp.MustCompile(`(?i)valuation date`)
)

// fileMeta scans the report preamble for the portfolio code and
// valuation date. Both are optional; records are simply not stamped when
// a value is missing.
func fileMeta(preamble []models.Row) (portfolio, valuationDate string) {
	for _, row := range preamble {
		for col, cell := range row {
			if !cell.IsText() {
				continue
			}
			text := strings.TrimSpace(cell.Text)
			if portfolio == "" {
				if m := portfolioInline.FindStringSubmatch(text); m != nil {
					portfolio = m[1]
				} else if portfolioTag.MatchString(text) {
					if v, ok := nextValue(row, col); ok {
						portfolio = strings.TrimSpace(v.String())
					}
				}
			}
			if valuationDate == "" && valuationLabel.MatchString(text) {
				if v, ok := nextValue(row, col); ok {
					valuationDate = formatValuationDate(v)
				} else if _, after, found := strings.Cut(text, ":"); found {
					valuationDate = strings.TrimSpace(after)
				}
			}
		}
	}
	return portfolio, valuationDate
}

// nextValue returns the first non-blank cell after col in row.
func nextValue(row models.Row, col int) (models.Value, bool) {
	for i := col + 1; i < len(row); i++ {
		if !row[i].IsBlank() {
			return row[i], true
		}
	}
	return models.BlankValue(), false
}

// formatValuationDate renders the valuation date zero-padded
// ("2018-04-30"), the form the report preamble uses, whether the cell
// held text or a date ordinal.
func formatValuationDate(v models.Value) string {
	if d, ok := v.Decimal(); ok {
		t := spreadsheetEpoch.AddDate(0, 0, int(d.IntPart())-1)
		return t.Format(time.DateOnly)
	}
	return strings.TrimSpace(v.Text)
}
