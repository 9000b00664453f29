package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/clamc/trustee/internal/models"
)

// AliasResolver resolves non-ISIN bond identifiers to real ISINs. The
// alias table is live reference data maintained by operators, not code;
// see the storage package for the sqlite-backed implementation.
type AliasResolver interface {
	// Resolve returns the ISIN for alias and whether a mapping exists.
	Resolve(alias string) (string, bool)
}

// MapAliases is an in-memory AliasResolver.
type MapAliases map[string]string

// Resolve implements AliasResolver.
func (m MapAliases) Resolve(alias string) (string, bool) {
	isin, ok := m[alias]
	return isin, ok
}

// AddIdentifier derives the security identifier from the description's
// first whitespace-delimited token: bonds get an isin (alias-resolved),
// equities get the token verbatim as ticker. Other types are untouched.
func AddIdentifier(p *models.Position, aliases AliasResolver) {
	tokens := strings.Fields(p.Description)
	if len(tokens) == 0 {
		return
	}
	id := tokens[0]

	switch p.Type {
	case models.SecurityBond:
		if aliases != nil {
			if isin, ok := aliases.Resolve(id); ok {
				id = isin
			}
		}
		p.Set(models.FieldISIN, models.TextValue(id))
	case models.SecurityEquity:
		p.Set(models.FieldTicker, models.TextValue(id))
	}
}

var dateFields = []models.FieldName{
	models.FieldInterestStartDay,
	models.FieldMaturity,
	models.FieldLastTradeDay,
}

// spreadsheetEpoch is day 1 of the spreadsheet date system under the
// common off-by-two convention, i.e. ordinal 1 = 1899-12-31.
var spreadsheetEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// NormalizeDates rewrites the position's date fields from spreadsheet
// ordinals to "YYYY-M-D" strings without zero padding. Fields that are
// absent or already text are left untouched.
func NormalizeDates(p *models.Position) {
	for _, name := range dateFields {
		v, ok := p.Get(name)
		if !ok {
			continue
		}
		d, ok := v.Decimal()
		if !ok {
			continue
		}
		p.Set(name, models.TextValue(OrdinalToDate(d.IntPart())))
	}
}

// OrdinalToDate renders a spreadsheet date ordinal as "YYYY-M-D".
func OrdinalToDate(ordinal int64) string {
	t := spreadsheetEpoch.AddDate(0, 0, int(ordinal)-1)
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}
