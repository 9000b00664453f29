package upload

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/clamc/trustee/internal/models"
)

// ErrNoPositionHeader means a tax lot report has no recognizable
// position header row.
var ErrNoPositionHeader = errors.New("no position header row found")

// BondEntry keys one bond holding for the upload join. The same bond
// held in the same portfolio across multiple tax lots collapses to one
// entry.
type BondEntry struct {
	Portfolio string
	ISIN      string
}

var isinShape = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// BondEntries extracts the deduplicated bond holdings from a Geneva tax
// lot appraisal grid. Positions are keyed by the header row containing
// "Portfolio" and "InvestID" and run until the first blank-first-cell
// row. A position counts as a bond when its asset-class grouping column
// mentions bonds, or, when the report has no such column, when its
// InvestID leads with an ISIN-shaped token. The result is sorted by
// portfolio then ISIN.
func BondEntries(rows []models.Row) ([]BondEntry, error) {
	headerIdx := -1
	var headers map[string]int
	for i, row := range rows {
		h := headerNames(row)
		if _, ok1 := h["portfolio"]; ok1 {
			if _, ok2 := h["investid"]; ok2 {
				headerIdx, headers = i, h
				break
			}
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("tax lot report: %w", ErrNoPositionHeader)
	}

	portfolioCol := headers["portfolio"]
	investCol := headers["investid"]
	groupCol, hasGroup := headers["group1"]
	if !hasGroup {
		groupCol, hasGroup = headers["group"]
	}

	set := make(map[BondEntry]struct{})
	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 || strings.TrimSpace(row[0].String()) == "" {
			break
		}
		invest := strings.TrimSpace(cell(row, investCol).String())
		tokens := strings.Fields(invest)
		if len(tokens) == 0 {
			continue
		}
		isin := tokens[0]

		bond := false
		if hasGroup {
			bond = strings.Contains(strings.ToLower(cell(row, groupCol).String()), "bond")
		} else {
			bond = isinShape.MatchString(isin)
		}
		if !bond {
			continue
		}

		portfolio := strings.TrimSpace(cell(row, portfolioCol).String())
		set[BondEntry{Portfolio: portfolio, ISIN: isin}] = struct{}{}
	}

	entries := make([]BondEntry, 0, len(set))
	for e := range set {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Portfolio != entries[j].Portfolio {
			return entries[i].Portfolio < entries[j].Portfolio
		}
		return entries[i].ISIN < entries[j].ISIN
	})
	return entries, nil
}
