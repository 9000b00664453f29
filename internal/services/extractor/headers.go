package extractor

import (
	"fmt"
	"strings"

	"github.com/clamc/trustee/internal/models"
)

// labelRegistry is the canonical field label registry: it maps the
// composite bilingual column labels found in trustee reports to canonical
// field names. The report renders each header across three stacked rows
// mixing Chinese and English; the resolver joins them per column before
// the lookup.
//
// This table is the one place a new report layout is onboarded. A
// non-blank label missing from it aborts the run with ErrUnknownLabel;
// the empty label maps to the ignored column.
var labelRegistry = map[string]models.FieldName{
	"": "",

	// Common columns.
	"項目 Description": models.FieldDescription,
	"幣值 CCY":         models.FieldCurrency,
	"平均成本 Avg Cost":  models.FieldAverageCost,
	"成本 Cost":        models.FieldTotalCost,
	"百份比 % of Fund":  models.FieldPercentOfFund,

	// Debt securities columns.
	"票面值 Par Amt":             models.FieldQuantity,
	"利率 Interest Rate%":       models.FieldCoupon,
	"Interest Start Day":      models.FieldInterestStartDay,
	"到期日 Maturity":            models.FieldMaturity,
	"修正價 Amortized Price":     models.FieldAmortizedCost,
	"應收利息 Accr. Int.":         models.FieldAccruedInterest,
	"Total Amortized Value":   models.FieldTotalAmortizedCost,
	"P/L A. Value":            models.FieldTotalAmortizedGainLoss,
	"成本 Cost HKD":             models.FieldTotalCostHKD,
	"應收利息 Acc. Int. HKD":      models.FieldAccruedInterestHKD,
	"總攤銷值 Total A. Value HKD": models.FieldTotalAmortizedCostHKD,
	"盈/虧-攤銷值 P/L A. Value HKD": models.FieldTotalAmortizedGainLossHKD,
	"盈/虧-匯率 P/L FX HKD":        models.FieldFXGainLossHKD,

	// Equity columns.
	"股數 Quantity":             models.FieldQuantity,
	"最後交易日 Last Trade Day":    models.FieldLastTradeDay,
	"市價 Market Price":         models.FieldMarketPrice,
	"市值 Market Value":         models.FieldTotalMarketValue,
	"應收股息 Accr. Dividend":     models.FieldAccruedDividend,
	"盈/虧-市值 P/L M. Value HKD": models.FieldMarketValueGainLossHKD,

	// Cash columns.
	"戶口結餘 Balance":     models.FieldQuantity,
	"結餘 Balance HKD":   models.FieldBalanceHKD,
	"利率 Interest Rate": models.FieldCoupon,
}

// resolveHeaders locates the section's header row (the first row whose
// first cell's trimmed text starts with "Description") and maps every
// column to its canonical field name via the label registry. A column's
// composite label joins its cells from the header row and the two rows
// above it. The returned index is the header row's position within the
// section.
func resolveHeaders(sec Section) ([]models.FieldName, int, error) {
	idx := -1
	for i, row := range sec.Rows {
		if len(row) > 0 && row[0].IsText() &&
			strings.HasPrefix(strings.TrimSpace(row[0].Text), "Description") {
			idx = i
			break
		}
	}
	// Needs the two label rows above it.
	if idx < 2 {
		return nil, 0, fmt.Errorf("section %q: %w", sec.Heading, ErrHeaderRowNotFound)
	}

	top, mid, bottom := sec.Rows[idx-2], sec.Rows[idx-1], sec.Rows[idx]
	names := make([]models.FieldName, len(bottom))
	for col := range bottom {
		label := compositeLabel(cellText(top, col), cellText(mid, col), cellText(bottom, col))
		name, ok := labelRegistry[label]
		if !ok {
			return nil, 0, fmt.Errorf("section %q column %d label %q: %w",
				sec.Heading, col, label, ErrUnknownLabel)
		}
		names[col] = name
	}
	return names, idx, nil
}

// compositeLabel joins stacked header cells with single spaces, trimming
// after each join so blank padding rows between the two languages do not
// change the result.
func compositeLabel(parts ...string) string {
	label := ""
	for _, p := range parts {
		label = strings.TrimSpace(label + " " + p)
	}
	return label
}

func cellText(row models.Row, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col].String()
}
