// Package upload builds the TSCF upload feed: it joins bond holdings
// extracted from tax lot appraisal reports against historical purchase
// cost and yield reference data.
package upload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/clamc/trustee/internal/models"
)

var log = logrus.New()

// SetLogger installs a configured logger for this package. A nil logger
// leaves the current one in place.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ErrMissingColumns means the historical cost file's header row lacks a
// required column.
var ErrMissingColumns = errors.New("historical cost file missing required columns")

// CostEntry is one security's historical reference data.
type CostEntry struct {
	PurchaseCost decimal.Decimal
	YieldAtCost  decimal.Decimal
}

// ParseHistoricalCosts reads the historical cost reference grid into a
// map keyed by ISIN. The first row is the header (case-insensitive,
// read up to the first blank cell) and must include "isin", "purchase
// cost" and "yield at cost". Data rows run until the first row whose
// first cell is blank.
func ParseHistoricalCosts(rows []models.Row) (map[string]CostEntry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty historical cost sheet: %w", ErrMissingColumns)
	}

	headers := headerNames(rows[0])
	isinCol, ok1 := headers["isin"]
	costCol, ok2 := headers["purchase cost"]
	yieldCol, ok3 := headers["yield at cost"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("got columns %v: %w", keys(headers), ErrMissingColumns)
	}

	data := make(map[string]CostEntry)
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0].IsBlank() || strings.TrimSpace(row[0].String()) == "" {
			break
		}
		isin := strings.TrimSpace(cell(row, isinCol).String())
		cost, _ := cell(row, costCol).Decimal()
		yield, _ := cell(row, yieldCol).Decimal()
		data[isin] = CostEntry{PurchaseCost: cost, YieldAtCost: yield}
	}
	return data, nil
}

// headerNames maps lower-cased header text to column index, stopping at
// the first blank header cell.
func headerNames(row models.Row) map[string]int {
	out := make(map[string]int)
	for i, v := range row {
		text := strings.TrimSpace(v.String())
		if text == "" {
			break
		}
		out[strings.ToLower(text)] = i
	}
	return out
}

func cell(row models.Row, col int) models.Value {
	if col >= len(row) {
		return models.BlankValue()
	}
	return row[col]
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
