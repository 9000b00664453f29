package extractor

import (
	"testing"

	"github.com/clamc/trustee/internal/models"
)

func TestDecodeSection(t *testing.T) {
	sec := Section{
		Heading:   "IV. Debt Securities - Held for Maturity USD",
		Kind:      models.SecurityBond,
		Treatment: models.TreatmentHTM,
		Rows: htmBondRows(
			row(text("US55608JAB44 Macquarie Gp L7.625%"), text("USD"), num("1350000"), num("7.625"), num("43144"), num("43690"), num("105.402"), num("101.1070089"), num("1422927"), num("22303.12"), num("0.25")),
			row(text("US268317AB08 Electricite D F6.5%"), text("USD"), num("33000000"), num("6.5"), num("43126"), num("44000"), num("100.6170829"), num("100.3129323"), num("33203637"), num("393250"), num("2.62")),
		),
	}

	records, err := DecodeSection(sec)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Records: got %d, want 2 (total row must be excluded)", len(records))
	}

	r := records[0]
	if r.Type != models.SecurityBond || r.Accounting != models.TreatmentHTM {
		t.Errorf("Tags: got %q/%q", r.Type, r.Accounting)
	}
	if r.Description != "US55608JAB44 Macquarie Gp L7.625%" {
		t.Errorf("Description: got %q", r.Description)
	}
	if r.Currency != "USD" {
		t.Errorf("Currency: got %q", r.Currency)
	}
	if d, _ := r.Quantity.Decimal(); d.String() != "1350000" {
		t.Errorf("Quantity: got %s", d)
	}
	if d, _ := r.AverageCost.Decimal(); d.String() != "105.402" {
		t.Errorf("Average cost: got %s", d)
	}
	if v, ok := r.Get(models.FieldTotalCost); !ok || v.String() != "1422927" {
		t.Errorf("Total cost: got %v", v)
	}
	if v, ok := r.Get(models.FieldAccruedInterest); !ok || v.String() != "22303.12" {
		t.Errorf("Accrued interest: got %v", v)
	}

	// Tags project as trailing fields after the mapped columns.
	order := r.FieldOrder()
	if len(order) < 2 || order[len(order)-2] != models.FieldType || order[len(order)-1] != models.FieldAccounting {
		t.Errorf("Field order should end with type, accounting: %v", order)
	}
}

func TestDecodeSection_EmptySection(t *testing.T) {
	sec := Section{
		Heading:   "IV. Debt Securities - Held for Maturity USD",
		Kind:      models.SecurityBond,
		Treatment: models.TreatmentHTM,
		Rows:      htmBondRows(),
	}
	records, err := DecodeSection(sec)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Records: got %d, want 0", len(records))
	}
}
