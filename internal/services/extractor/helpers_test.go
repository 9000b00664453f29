package extractor

import (
	"github.com/shopspring/decimal"

	"github.com/clamc/trustee/internal/models"
)

func text(s string) models.Value { return models.TextValue(s) }

func num(s string) models.Value {
	return models.NumberValue(decimal.RequireFromString(s))
}

func blank() models.Value { return models.BlankValue() }

func row(vs ...models.Value) models.Row { return models.Row(vs) }

// htmBondRows builds a held-to-maturity bond section the way the report
// renders it: heading, three stacked header rows, data rows, total row.
func htmBondRows(data ...models.Row) []models.Row {
	rows := []models.Row{
		row(text("IV. Debt Securities - Held for Maturity USD")),
		row(text("項目"), text("幣值"), text("票面值"), text("利率"), blank(), text("到期日"), text("平均成本"), text("修正價"), text("成本"), text("應收利息"), text("百份比")),
		row(blank(), blank(), blank(), blank(), blank(), blank(), blank(), blank(), blank(), blank(), blank()),
		row(text("Description"), text("CCY"), text("Par Amt"), text("Interest Rate%"), text("Interest Start Day"), text("Maturity"), text("Avg Cost"), text("Amortized Price"), text("Cost"), text("Accr. Int."), text("% of Fund")),
	}
	rows = append(rows, data...)
	// Section total row.
	rows = append(rows, row(text("Total"), blank(), num("0"), blank(), blank(), blank(), blank(), blank(), num("0"), num("0"), num("0")))
	return rows
}
