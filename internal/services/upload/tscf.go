package upload

import (
	"github.com/sirupsen/logrus"

	"github.com/clamc/trustee/internal/models"
)

// TSCF field codes and the security-id-type constant meaning ISIN.
const (
	FieldCodePurchaseCost = "CD022"
	FieldCodeYieldAtCost  = "CD021"
	securityIDTypeISIN    = "4"
)

// FeedHeader returns the two fixed literal header rows of a TSCF upload
// file.
func FeedHeader() []models.Row {
	return []models.Row{
		{
			models.TextValue("Upload Method"),
			models.TextValue("INCREMENTAL"),
			models.BlankValue(),
			models.BlankValue(),
			models.BlankValue(),
			models.BlankValue(),
		},
		{
			models.TextValue("Field Id"),
			models.TextValue("Security Id Type"),
			models.TextValue("Security Id"),
			models.TextValue("Account Code"),
			models.TextValue("Numeric Value"),
			models.TextValue("Char Value"),
		},
	}
}

// JoinRows joins bond entries against the historical cost map. Each
// entry found in the map yields two adjacent rows, purchase cost
// (CD022) then yield at cost (CD021), the value repeated as both the
// numeric and char columns. An entry with no reference data yields no
// rows; it is reported as a warning and processing continues.
func JoinRows(hist map[string]CostEntry, entries []BondEntry) []models.Row {
	var rows []models.Row
	for _, e := range entries {
		data, ok := hist[e.ISIN]
		if !ok {
			log.WithFields(logrus.Fields{
				"portfolio": e.Portfolio,
				"isin":      e.ISIN,
			}).Warn("no historical cost data for bond, skipping")
			continue
		}
		rows = append(rows,
			feedRow(FieldCodePurchaseCost, e, models.NumberValue(data.PurchaseCost)),
			feedRow(FieldCodeYieldAtCost, e, models.NumberValue(data.YieldAtCost)),
		)
	}
	return rows
}

func feedRow(code string, e BondEntry, v models.Value) models.Row {
	return models.Row{
		models.TextValue(code),
		models.TextValue(securityIDTypeISIN),
		models.TextValue(e.ISIN),
		models.TextValue(e.Portfolio),
		v,
		v,
	}
}
