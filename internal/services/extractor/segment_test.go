package extractor

import (
	"testing"

	"github.com/clamc/trustee/internal/models"
)

func TestSegment_Sections(t *testing.T) {
	rows := []models.Row{
		row(text("China Life Trustee")),                       // preamble
		row(blank(), blank()),                                 // empty
		row(text("I. Cash - HKD")),
		row(text("account"), num("100")),
		row(text("  "), text("")),                             // empty
		row(text("IV. Debt Securities - Held for Maturity USD")),
		row(text("bond row"), num("1")),
		row(text("VIII. Accruals")),
	}

	sections := Segment(rows)
	if len(sections) != 3 {
		t.Fatalf("Sections: got %d, want 3", len(sections))
	}

	tests := []struct {
		heading   string
		kind      models.SecurityType
		treatment models.Treatment
		rowCount  int
	}{
		{"I. Cash - HKD", models.SecurityCash, models.TreatmentUnknown, 2},
		{"IV. Debt Securities - Held for Maturity USD", models.SecurityBond, models.TreatmentHTM, 2},
		{"VIII. Accruals", models.SecurityUnknown, models.TreatmentUnknown, 1},
	}
	for i, tt := range tests {
		sec := sections[i]
		if sec.Heading != tt.heading {
			t.Errorf("Section %d heading: got %q, want %q", i, sec.Heading, tt.heading)
		}
		if sec.Kind != tt.kind {
			t.Errorf("Section %d kind: got %q, want %q", i, sec.Kind, tt.kind)
		}
		if sec.Treatment != tt.treatment {
			t.Errorf("Section %d treatment: got %q, want %q", i, sec.Treatment, tt.treatment)
		}
		if len(sec.Rows) != tt.rowCount {
			t.Errorf("Section %d rows: got %d, want %d", i, len(sec.Rows), tt.rowCount)
		}
	}
}

func TestSegment_NoHeadings(t *testing.T) {
	rows := []models.Row{
		row(text("just a title")),
		row(text("some data"), num("1")),
	}
	if got := Segment(rows); len(got) != 0 {
		t.Errorf("Sections: got %d, want 0", len(got))
	}
}

func TestSegment_Idempotent(t *testing.T) {
	rows := []models.Row{
		row(text("I. Cash - HKD")),
		row(text("account"), num("100")),
		row(text("II. Equities - Held for Trading HKD")),
		row(text("equity row"), num("1")),
		row(text("another"), num("2")),
	}

	first := Segment(rows)

	// Re-serialize the sections back into a flat row sequence.
	var flat []models.Row
	for _, sec := range first {
		flat = append(flat, sec.Rows...)
	}
	second := Segment(flat)

	if len(second) != len(first) {
		t.Fatalf("Sections after re-run: got %d, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Heading != first[i].Heading {
			t.Errorf("Section %d heading: got %q, want %q", i, second[i].Heading, first[i].Heading)
		}
		if len(second[i].Rows) != len(first[i].Rows) {
			t.Errorf("Section %d rows: got %d, want %d", i, len(second[i].Rows), len(first[i].Rows))
		}
	}
}

func TestSegment_TreatmentHeadings(t *testing.T) {
	tests := []struct {
		heading   string
		kind      models.SecurityType
		treatment models.Treatment
	}{
		{"II. Equities - Held for Trading HKD", models.SecurityEquity, models.TreatmentTrading},
		{"III. Equities - Available for Sales USD", models.SecurityEquity, models.TreatmentAFS},
		{"IV. Debt Securities - Held for Maturity HKD", models.SecurityBond, models.TreatmentHTM},
		{"V. Debt Securities - Available for Sales USD", models.SecurityBond, models.TreatmentAFS},
		{"I. Cash - CNY", models.SecurityCash, models.TreatmentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			kind, treatment := sectionInfo(tt.heading)
			if kind != tt.kind {
				t.Errorf("Kind: got %q, want %q", kind, tt.kind)
			}
			if treatment != tt.treatment {
				t.Errorf("Treatment: got %q, want %q", treatment, tt.treatment)
			}
		})
	}
}

func TestEmptyRow(t *testing.T) {
	tests := []struct {
		name string
		r    models.Row
		want bool
	}{
		{"all blank text", row(text(""), text("  "), text("")), true},
		{"truly empty cells", row(blank(), blank()), true},
		{"number makes it data", row(text(""), num("0")), false},
		{"text makes it data", row(text("x")), false},
		{"text past cell 20 ignored", models.Row(append(blanks(20), text("far right"))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emptyRow(tt.r); got != tt.want {
				t.Errorf("emptyRow: got %v, want %v", got, tt.want)
			}
		})
	}
}

func blanks(n int) []models.Value {
	out := make([]models.Value, n)
	for i := range out {
		out[i] = blank()
	}
	return out
}
