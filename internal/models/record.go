package models

// SecurityType categorizes a holdings section by instrument kind.
type SecurityType string

const (
	SecurityCash    SecurityType = "cash"
	SecurityBond    SecurityType = "bond"
	SecurityEquity  SecurityType = "equity"
	SecurityUnknown SecurityType = ""
)

// Treatment is the accounting treatment of a holdings section.
type Treatment string

const (
	TreatmentHTM     Treatment = "htm"
	TreatmentAFS     Treatment = "afs"
	TreatmentTrading Treatment = "trading"
	TreatmentUnknown Treatment = ""
)

// FieldName identifies a canonical record column. The header resolver maps
// raw bilingual column labels onto these names.
type FieldName string

const (
	FieldDescription      FieldName = "description"
	FieldCurrency         FieldName = "currency"
	FieldQuantity         FieldName = "quantity"
	FieldCoupon           FieldName = "coupon"
	FieldInterestStartDay FieldName = "interest start day"
	FieldMaturity         FieldName = "maturity"
	FieldLastTradeDay     FieldName = "last trade day"
	FieldAverageCost      FieldName = "average cost"
	FieldAmortizedCost    FieldName = "amortized cost"
	FieldMarketPrice      FieldName = "market price"
	FieldPercentOfFund    FieldName = "percentage of fund"
	FieldType             FieldName = "type"
	FieldAccounting       FieldName = "accounting"
	FieldISIN             FieldName = "isin"
	FieldTicker           FieldName = "ticker"
	FieldPortfolio        FieldName = "portfolio"
	FieldValuationDate    FieldName = "valuation date"
)

// Amount-bucket field names. These are never promoted to struct fields;
// they sum when positions merge.
const (
	FieldTotalCost                 FieldName = "total cost"
	FieldAccruedInterest           FieldName = "accrued interest"
	FieldTotalAmortizedCost        FieldName = "total amortized cost"
	FieldTotalAmortizedGainLoss    FieldName = "total amortized gain loss"
	FieldTotalCostHKD              FieldName = "total cost HKD"
	FieldAccruedInterestHKD        FieldName = "accrued interest HKD"
	FieldTotalAmortizedCostHKD     FieldName = "total amortized cost HKD"
	FieldTotalAmortizedGainLossHKD FieldName = "total amortized gain loss HKD"
	FieldFXGainLossHKD             FieldName = "FX gain loss HKD"
	FieldTotalMarketValue          FieldName = "total market value"
	FieldAccruedDividend           FieldName = "accrued dividend"
	FieldMarketValueGainLossHKD    FieldName = "market value gain loss HKD"
	FieldBalanceHKD                FieldName = "balance HKD"
)

// Amount is one non-promoted numeric column, e.g. "total cost" or
// "accrued interest HKD". Amounts sum when positions merge.
type Amount struct {
	Name  FieldName
	Value Value
}

// Position is one decoded holding row. The identity and pricing columns
// every report shares are promoted to struct fields; any other mapped
// column lands in Amounts so new report layouts need no type change.
//
// A Position also remembers the order fields were assigned in, so a
// projected table preserves the source column order.
type Position struct {
	Type       SecurityType
	Accounting Treatment

	Description   string
	Currency      string
	ISIN          string
	Ticker        string
	Portfolio     string
	ValuationDate string

	Quantity         Value
	Coupon           Value
	InterestStartDay Value
	Maturity         Value
	LastTradeDay     Value
	AverageCost      Value
	AmortizedCost    Value
	MarketPrice      Value
	PercentOfFund    Value

	Amounts []Amount

	order []FieldName
}

// NewPosition creates an empty position tagged with its section's kind
// and treatment.
func NewPosition(t SecurityType, a Treatment) *Position {
	return &Position{Type: t, Accounting: a}
}

// Set assigns a field by canonical name, recording first-assignment order.
// Unpromoted names accumulate in the Amounts bucket.
func (p *Position) Set(name FieldName, v Value) {
	if !p.Has(name) {
		p.order = append(p.order, name)
	}
	switch name {
	case FieldDescription:
		p.Description = v.String()
	case FieldCurrency:
		p.Currency = v.String()
	case FieldISIN:
		p.ISIN = v.String()
	case FieldTicker:
		p.Ticker = v.String()
	case FieldPortfolio:
		p.Portfolio = v.String()
	case FieldValuationDate:
		p.ValuationDate = v.String()
	case FieldType:
		p.Type = SecurityType(v.String())
	case FieldAccounting:
		p.Accounting = Treatment(v.String())
	case FieldQuantity:
		p.Quantity = v
	case FieldCoupon:
		p.Coupon = v
	case FieldInterestStartDay:
		p.InterestStartDay = v
	case FieldMaturity:
		p.Maturity = v
	case FieldLastTradeDay:
		p.LastTradeDay = v
	case FieldAverageCost:
		p.AverageCost = v
	case FieldAmortizedCost:
		p.AmortizedCost = v
	case FieldMarketPrice:
		p.MarketPrice = v
	case FieldPercentOfFund:
		p.PercentOfFund = v
	default:
		for i := range p.Amounts {
			if p.Amounts[i].Name == name {
				p.Amounts[i].Value = v
				return
			}
		}
		p.Amounts = append(p.Amounts, Amount{Name: name, Value: v})
	}
}

// Get returns a field by canonical name and whether it was ever assigned.
func (p *Position) Get(name FieldName) (Value, bool) {
	if !p.Has(name) {
		return BlankValue(), false
	}
	switch name {
	case FieldDescription:
		return TextValue(p.Description), true
	case FieldCurrency:
		return TextValue(p.Currency), true
	case FieldISIN:
		return TextValue(p.ISIN), true
	case FieldTicker:
		return TextValue(p.Ticker), true
	case FieldPortfolio:
		return TextValue(p.Portfolio), true
	case FieldValuationDate:
		return TextValue(p.ValuationDate), true
	case FieldType:
		return TextValue(string(p.Type)), true
	case FieldAccounting:
		return TextValue(string(p.Accounting)), true
	case FieldQuantity:
		return p.Quantity, true
	case FieldCoupon:
		return p.Coupon, true
	case FieldInterestStartDay:
		return p.InterestStartDay, true
	case FieldMaturity:
		return p.Maturity, true
	case FieldLastTradeDay:
		return p.LastTradeDay, true
	case FieldAverageCost:
		return p.AverageCost, true
	case FieldAmortizedCost:
		return p.AmortizedCost, true
	case FieldMarketPrice:
		return p.MarketPrice, true
	case FieldPercentOfFund:
		return p.PercentOfFund, true
	default:
		for _, a := range p.Amounts {
			if a.Name == name {
				return a.Value, true
			}
		}
		return BlankValue(), false
	}
}

// Has reports whether the field was ever assigned on this position.
func (p *Position) Has(name FieldName) bool {
	for _, n := range p.order {
		if n == name {
			return true
		}
	}
	return false
}

// Strip removes fields by name, e.g. the per-portfolio columns that are
// meaningless after cross-file consolidation.
func (p *Position) Strip(names ...FieldName) {
	for _, name := range names {
		if !p.Has(name) {
			continue
		}
		kept := p.order[:0]
		for _, n := range p.order {
			if n != name {
				kept = append(kept, n)
			}
		}
		p.order = kept
		switch name {
		case FieldPortfolio:
			p.Portfolio = ""
		case FieldPercentOfFund:
			p.PercentOfFund = BlankValue()
		default:
			amounts := p.Amounts[:0]
			for _, a := range p.Amounts {
				if a.Name != name {
					amounts = append(amounts, a)
				}
			}
			p.Amounts = amounts
		}
	}
}

// FieldOrder returns the field names in assignment order.
func (p *Position) FieldOrder() []FieldName {
	out := make([]FieldName, len(p.order))
	copy(out, p.order)
	return out
}

// Clone returns a deep copy; consolidation works on fresh copies so
// caller-owned positions stay untouched.
func (p *Position) Clone() *Position {
	c := *p
	c.Amounts = make([]Amount, len(p.Amounts))
	copy(c.Amounts, p.Amounts)
	c.order = make([]FieldName, len(p.order))
	copy(c.order, p.order)
	return &c
}
