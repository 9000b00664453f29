package models

import (
	"github.com/shopspring/decimal"
)

// ValueKind discriminates the scalar kinds a spreadsheet cell can hold.
type ValueKind int

const (
	KindBlank ValueKind = iota
	KindText
	KindNumber
)

// Value is one raw cell scalar: text, number, or blank. Numbers are kept
// as decimals so cost and quantity arithmetic stays exact.
type Value struct {
	Kind   ValueKind
	Text   string
	Number decimal.Decimal
}

// TextValue returns a text value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NumberValue returns a numeric value.
func NumberValue(d decimal.Decimal) Value {
	return Value{Kind: KindNumber, Number: d}
}

// BlankValue returns the empty cell value.
func BlankValue() Value {
	return Value{Kind: KindBlank}
}

// IsBlank reports whether the value is the empty cell.
func (v Value) IsBlank() bool {
	return v.Kind == KindBlank
}

// IsText reports whether the value holds text.
func (v Value) IsText() bool {
	return v.Kind == KindText
}

// IsNumber reports whether the value holds a number.
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// Decimal returns the numeric content, and whether the value is numeric.
func (v Value) Decimal() (decimal.Decimal, bool) {
	if v.Kind != KindNumber {
		return decimal.Zero, false
	}
	return v.Number, true
}

// String renders the value the way it is written to a delimited file:
// text as-is, numbers in their shortest decimal form, blanks as "".
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number.String()
	default:
		return ""
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindNumber:
		return v.Number.Equal(o.Number)
	default:
		return true
	}
}

// Row is one spreadsheet row of raw cell values.
type Row []Value
