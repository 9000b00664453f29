package extractor

import (
	"testing"

	"github.com/clamc/trustee/internal/models"
)

// reportGrid is a miniature consolidation report: preamble with portfolio
// code and valuation date, then one HTM bond section whose second bond is
// spread over two tax lot rows.
func reportGrid() []models.Row {
	rows := []models.Row{
		row(text("China Life Trustee Limited")),
		row(text("Portfolio Consolidation Report")),
		row(text("Portfolio No."), blank(), num("12229")),
		row(text("Valuation Date"), blank(), num("43220")),
		row(blank(), blank(), blank()),
	}
	rows = append(rows, htmBondRows(
		row(text("US55608JAB44 Macquarie Gp L7.625%"), text("USD"), num("1350000"), num("7.625"), num("43144"), num("43690"), num("105.402"), num("101.1070089"), num("1422927"), num("22303.12"), num("0.25")),
		row(text("DBANFB12014 Dragon Days Ltd 6.0%"), text("HKD"), num("100"), num("6"), num("43180"), num("44641"), num("20"), num("10"), num("2000"), num("50"), num("0.1")),
		row(text(""), text(""), num("300"), blank(), blank(), blank(), num("24"), num("30"), num("7200"), num("150"), num("0.3")),
	)...)
	return rows
}

func TestRecordsFromGrid(t *testing.T) {
	svc := NewService(MapAliases{"DBANFB12014": "HK0000175916"})

	records, err := svc.RecordsFromGrid(reportGrid())
	if err != nil {
		t.Fatalf("RecordsFromGrid: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Records: got %d, want 2 (continuation row must merge)", len(records))
	}

	r := records[0]
	if r.ISIN != "US55608JAB44" {
		t.Errorf("ISIN: got %q", r.ISIN)
	}
	if v, _ := r.Get(models.FieldInterestStartDay); v.String() != "2018-2-13" {
		t.Errorf("Interest start day: got %s", v)
	}
	if v, _ := r.Get(models.FieldMaturity); v.String() != "2019-8-13" {
		t.Errorf("Maturity: got %s", v)
	}
	if r.Portfolio != "12229" {
		t.Errorf("Portfolio: got %q", r.Portfolio)
	}
	if r.ValuationDate != "2018-04-30" {
		t.Errorf("Valuation date: got %q", r.ValuationDate)
	}

	m := records[1]
	if m.ISIN != "HK0000175916" {
		t.Errorf("Aliased ISIN: got %q", m.ISIN)
	}
	if d, _ := m.Quantity.Decimal(); d.String() != "400" {
		t.Errorf("Merged quantity: got %s", d)
	}
	if d, _ := m.AverageCost.Decimal(); d.String() != "23" {
		t.Errorf("Merged average cost: got %s", d)
	}
	if v, _ := m.Get(models.FieldTotalCost); v.String() != "9200" {
		t.Errorf("Merged total cost: got %s", v)
	}
	if v, _ := m.Get(models.FieldMaturity); v.String() != "2022-3-21" {
		t.Errorf("Merged maturity: got %s", v)
	}
}

func TestRecordsFromGrid_NoSections(t *testing.T) {
	rows := []models.Row{
		row(text("China Life Trustee Limited")),
		row(text("nothing to see")),
	}
	svc := NewService(nil)
	records, err := svc.RecordsFromGrid(rows)
	if err != nil {
		t.Fatalf("RecordsFromGrid: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Records: got %d, want 0", len(records))
	}
}

func TestFileMeta(t *testing.T) {
	tests := []struct {
		name          string
		rows          []models.Row
		portfolio     string
		valuationDate string
	}{
		{
			name: "tag cell with adjacent value",
			rows: []models.Row{
				row(text("Portfolio No."), blank(), num("12734")),
				row(text("Valuation Date"), num("43220")),
			},
			portfolio:     "12734",
			valuationDate: "2018-04-30",
		},
		{
			name: "inline code and colon date",
			rows: []models.Row{
				row(text("Fund 11490")),
				row(text("Valuation Date : 2018-04-30")),
			},
			portfolio:     "11490",
			valuationDate: "2018-04-30",
		},
		{
			name:      "absent",
			rows:      []models.Row{row(text("some title"))},
			portfolio: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			portfolio, valuationDate := fileMeta(tt.rows)
			if portfolio != tt.portfolio {
				t.Errorf("Portfolio: got %q, want %q", portfolio, tt.portfolio)
			}
			if valuationDate != tt.valuationDate {
				t.Errorf("Valuation date: got %q, want %q", valuationDate, tt.valuationDate)
			}
		})
	}
}
