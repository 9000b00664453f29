// Package report consolidates position records across portfolio files
// and projects homogeneous record sets into writable tables.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clamc/trustee/internal/excel"
	"github.com/clamc/trustee/internal/models"
	"github.com/clamc/trustee/internal/services/extractor"
)

var log = logrus.New()

// SetLogger installs a configured logger for this package. A nil logger
// leaves the current one in place.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Consolidate merges records of one security type and accounting
// treatment drawn from multiple files: records sharing a description are
// one security and collapse into a single record under the continuation
// merge rule. The per-portfolio fields ("portfolio", "percentage of
// fund") are stripped first since they are meaningless after the merge.
// Inputs stay untouched.
func Consolidate(records []*models.Position) ([]*models.Position, error) {
	stripped := make([]*models.Position, 0, len(records))
	for _, r := range records {
		c := r.Clone()
		c.Strip(models.FieldPortfolio, models.FieldPercentOfFund)
		stripped = append(stripped, c)
	}

	groups := groupByDescription(stripped)

	out := make([]*models.Position, 0, len(groups))
	for _, g := range groups {
		m, err := extractor.MergeGroup(g)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// groupByDescription groups records by exact description equality,
// preserving first-seen order. Description uniquely keys a security
// within one accounting bucket, so each group is one security.
func groupByDescription(records []*models.Position) [][]*models.Position {
	var groups [][]*models.Position
	index := make(map[string]int)
	for _, r := range records {
		if at, ok := index[r.Description]; ok {
			groups[at] = append(groups[at], r)
			continue
		}
		index[r.Description] = len(groups)
		groups = append(groups, []*models.Position{r})
	}
	return groups
}

// ToRows projects records with the same field set into a header row plus
// one value row per record, in the first record's field order.
func ToRows(records []*models.Position) []models.Row {
	if len(records) == 0 {
		return nil
	}
	order := records[0].FieldOrder()

	header := make(models.Row, len(order))
	for i, name := range order {
		header[i] = models.TextValue(string(name))
	}

	rows := make([]models.Row, 0, len(records)+1)
	rows = append(rows, header)
	for _, r := range records {
		row := make(models.Row, len(order))
		for i, name := range order {
			v, _ := r.Get(name)
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// ReadFolder extracts records from every spreadsheet file directly under
// folder and concatenates them.
func ReadFolder(svc *extractor.Service, folder string) ([]*models.Position, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", folder, err)
	}

	var records []*models.Position
	for _, e := range entries {
		if e.IsDir() || !isSpreadsheet(e.Name()) {
			continue
		}
		recs, err := svc.FileToRecords(filepath.Join(folder, e.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func isSpreadsheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

// FilterHTMBonds keeps bond records under held-to-maturity treatment.
func FilterHTMBonds(records []*models.Position) []*models.Position {
	var out []*models.Position
	for _, r := range records {
		if r.Type == models.SecurityBond && r.Accounting == models.TreatmentHTM {
			out = append(out, r)
		}
	}
	return out
}

// WriteHTMBondReport extracts every file in folder, consolidates the HTM
// bond holdings across portfolios and writes them as a CSV table.
func WriteHTMBondReport(svc *extractor.Service, folder, outPath string) error {
	records, err := ReadFolder(svc, folder)
	if err != nil {
		return err
	}
	consolidated, err := Consolidate(FilterHTMBonds(records))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"folder": folder, "securities": len(consolidated)}).
		Info("consolidated HTM bond holdings")
	return excel.WriteCSV(outPath, ToRows(consolidated))
}
