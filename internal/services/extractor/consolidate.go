package extractor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clamc/trustee/internal/models"
)

// Held-to-maturity bond sections can spread one security across several
// rows: only the first row carries the description, the rest are
// continuation rows for further tax lots of the same bond.

var weightTolerance = decimal.New(1, -6) // 1e-6

// firstValueFields keep the first record's value on merge. Everything
// else numeric sums, except the price fields which take the
// quantity-weighted average.
var firstValueFields = map[models.FieldName]bool{
	models.FieldDescription:      true,
	models.FieldCurrency:         true,
	models.FieldMaturity:         true,
	models.FieldCoupon:           true,
	models.FieldInterestStartDay: true,
	models.FieldLastTradeDay:     true,
	models.FieldType:             true,
	models.FieldAccounting:       true,
	models.FieldISIN:             true,
	models.FieldTicker:           true,
	models.FieldPortfolio:        true,
	models.FieldValuationDate:    true,
}

var weightedFields = map[models.FieldName]bool{
	models.FieldAverageCost:   true,
	models.FieldAmortizedCost: true,
}

// MergeContinuations collapses continuation rows into their owning
// record. Scanning in row order, a position with a non-empty description
// starts a new group; one with an empty description joins the most recent
// group. The input is left untouched.
func MergeContinuations(positions []*models.Position) ([]*models.Position, error) {
	var groups [][]*models.Position
	for _, p := range positions {
		if p.Description == "" {
			if len(groups) == 0 {
				return nil, ErrLeadingContinuation
			}
			groups[len(groups)-1] = append(groups[len(groups)-1], p)
			continue
		}
		groups = append(groups, []*models.Position{p})
	}

	merged := make([]*models.Position, 0, len(groups))
	for _, g := range groups {
		m, err := MergeGroup(g)
		if err != nil {
			return nil, err
		}
		merged = append(merged, m)
	}
	return merged, nil
}

// MergeGroup consolidates positions of one security into a single record:
// identity fields take the first record's value, price fields take the
// quantity-weighted average, all other numeric fields sum. A group of one
// returns a copy of its sole record.
func MergeGroup(group []*models.Position) (*models.Position, error) {
	if len(group) == 0 {
		return nil, fmt.Errorf("merge: empty group")
	}
	if len(group) == 1 {
		return group[0].Clone(), nil
	}

	total := decimal.Zero
	quantities := make([]decimal.Decimal, len(group))
	for i, p := range group {
		q, ok := p.Quantity.Decimal()
		if !ok {
			return nil, fmt.Errorf("merge %q: record %d has no quantity", group[0].Description, i)
		}
		quantities[i] = q
		total = total.Add(q)
	}
	if total.IsZero() {
		return nil, fmt.Errorf("merge %q: zero total quantity: %w", group[0].Description, ErrWeightInvariant)
	}

	weightSum := decimal.Zero
	for _, q := range quantities {
		weightSum = weightSum.Add(q.Div(total))
	}
	if weightSum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(weightTolerance) {
		return nil, fmt.Errorf("merge %q: weights sum to %s: %w",
			group[0].Description, weightSum, ErrWeightInvariant)
	}

	out := group[0].Clone()
	for _, name := range out.FieldOrder() {
		switch {
		case firstValueFields[name]:
			// Already the first record's value.
		case weightedFields[name]:
			v, err := weightedAverage(group, name, quantities, total)
			if err != nil {
				return nil, err
			}
			out.Set(name, v)
		default:
			v, err := sumField(group, name)
			if err != nil {
				return nil, err
			}
			out.Set(name, v)
		}
	}
	return out, nil
}

// weightedAverage computes sum(q_i * v_i) / sum(q_i), which equals the
// weight-form average without compounding division error.
func weightedAverage(group []*models.Position, name models.FieldName, quantities []decimal.Decimal, total decimal.Decimal) (models.Value, error) {
	acc := decimal.Zero
	for i, p := range group {
		v, _ := p.Get(name)
		d, ok := v.Decimal()
		if !ok {
			return models.BlankValue(), fmt.Errorf("merge %q: field %q of record %d is not numeric",
				group[0].Description, name, i)
		}
		acc = acc.Add(quantities[i].Mul(d))
	}
	return models.NumberValue(acc.Div(total)), nil
}

func sumField(group []*models.Position, name models.FieldName) (models.Value, error) {
	acc := decimal.Zero
	for i, p := range group {
		v, _ := p.Get(name)
		if v.IsBlank() {
			continue
		}
		d, ok := v.Decimal()
		if !ok {
			return models.BlankValue(), fmt.Errorf("merge %q: field %q of record %d is not numeric",
				group[0].Description, name, i)
		}
		acc = acc.Add(d)
	}
	return models.NumberValue(acc), nil
}
