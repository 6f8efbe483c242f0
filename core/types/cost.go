// Package types - Cost range types shared by the pricing tables and evaluators
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol, or the code for unknown currencies
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	}
	return string(c) + " "
}

// Pair is a {low, high} table entry. Depending on where it is used it is an
// absolute cost, a per-unit rate or a multiplier.
type Pair struct {
	// Low is the best-case value
	Low decimal.Decimal `json:"low"`

	// High is the worst-case value
	High decimal.Decimal `json:"high"`
}

// Identity is the neutral multiplier
var Identity = Pair{Low: decimal.NewFromInt(1), High: decimal.NewFromInt(1)}

// NewPair creates a pair from integer bounds
func NewPair(low, high int64) Pair {
	return Pair{Low: decimal.NewFromInt(low), High: decimal.NewFromInt(high)}
}

// PairOf returns a pair with the same value on both bounds
func PairOf(v decimal.Decimal) Pair {
	return Pair{Low: v, High: v}
}

// Scale multiplies both bounds by a quantity
func (p Pair) Scale(qty decimal.Decimal) Pair {
	return Pair{Low: p.Low.Mul(qty), High: p.High.Mul(qty)}
}

// Mul multiplies component-wise
func (p Pair) Mul(o Pair) Pair {
	return Pair{Low: p.Low.Mul(o.Low), High: p.High.Mul(o.High)}
}

// Round rounds both bounds to the given number of places
func (p Pair) Round(places int32) Pair {
	return Pair{Low: p.Low.Round(places), High: p.High.Round(places)}
}

// IsZero reports whether both bounds are zero
func (p Pair) IsZero() bool {
	return p.Low.IsZero() && p.High.IsZero()
}

func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.Low.String(), p.High.String())
}

// CostRange is an estimated price range in currency units
type CostRange struct {
	// Low is the lower estimate
	Low decimal.Decimal `json:"low"`

	// High is the upper estimate
	High decimal.Decimal `json:"high"`
}

// Zero returns an empty range
func Zero() CostRange {
	return CostRange{Low: decimal.Zero, High: decimal.Zero}
}

// RangeOf starts a range from a table pair
func RangeOf(p Pair) CostRange {
	return CostRange{Low: p.Low, High: p.High}
}

// NewRange creates a range from integer bounds
func NewRange(low, high int64) CostRange {
	return CostRange{Low: decimal.NewFromInt(low), High: decimal.NewFromInt(high)}
}

// Add adds a pair to each bound
func (r CostRange) Add(p Pair) CostRange {
	return CostRange{Low: r.Low.Add(p.Low), High: r.High.Add(p.High)}
}

// AddRange adds another range
func (r CostRange) AddRange(o CostRange) CostRange {
	return CostRange{Low: r.Low.Add(o.Low), High: r.High.Add(o.High)}
}

// AddEach adds qty units of a per-unit rate
func (r CostRange) AddEach(rate Pair, qty decimal.Decimal) CostRange {
	return r.Add(rate.Scale(qty))
}

// Times applies a multiplier component-wise: low by factor.Low, high by factor.High
func (r CostRange) Times(factor Pair) CostRange {
	return CostRange{Low: r.Low.Mul(factor.Low), High: r.High.Mul(factor.High)}
}

// Scale multiplies both bounds by the same quantity
func (r CostRange) Scale(qty decimal.Decimal) CostRange {
	return CostRange{Low: r.Low.Mul(qty), High: r.High.Mul(qty)}
}

// Floor raises each bound to at least the matching bound of min
func (r CostRange) Floor(min Pair) CostRange {
	return CostRange{Low: decimal.Max(r.Low, min.Low), High: decimal.Max(r.High, min.High)}
}

// NonNegative clamps both bounds at zero
func (r CostRange) NonNegative() CostRange {
	return CostRange{Low: decimal.Max(r.Low, decimal.Zero), High: decimal.Max(r.High, decimal.Zero)}
}

// Pair returns the range as a pair, for percentage-of-subtotal terms
func (r CostRange) Pair() Pair {
	return Pair{Low: r.Low, High: r.High}
}

// Round rounds both bounds to the given number of places
func (r CostRange) Round(places int32) CostRange {
	return CostRange{Low: r.Low.Round(places), High: r.High.Round(places)}
}

// WellFormed reports whether Low <= High
func (r CostRange) WellFormed() bool {
	return r.Low.LessThanOrEqual(r.High)
}

// IsZero reports whether both bounds are zero
func (r CostRange) IsZero() bool {
	return r.Low.IsZero() && r.High.IsZero()
}

// Equal compares bounds numerically
func (r CostRange) Equal(o CostRange) bool {
	return r.Low.Equal(o.Low) && r.High.Equal(o.High)
}

func (r CostRange) String() string {
	return fmt.Sprintf("%s - %s", r.Low.StringFixed(2), r.High.StringFixed(2))
}

// Format renders the range with a currency symbol and fixed decimals
func (r CostRange) Format(c Currency, places int32) string {
	sym := c.Symbol()
	return fmt.Sprintf("%s%s - %s%s", sym, r.Low.StringFixed(places), sym, r.High.StringFixed(places))
}
