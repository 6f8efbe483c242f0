// Package discount applies the session-wide percentage discount to a quote.
package discount

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/types"
)

var hundred = decimal.NewFromInt(100)

// Clamp limits pct to [0, 100]
func Clamp(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// Parse reads a percentage typed by the user. Blank or non-numeric input is 0.
func Parse(raw string) decimal.Decimal {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return Clamp(d)
}

// Apply scales both bounds by (100 - pct) / 100 and clamps them at zero.
// It runs after the vertical's minimum fee, so a large discount can take the
// result below that minimum.
func Apply(r types.CostRange, pct decimal.Decimal) types.CostRange {
	factor := hundred.Sub(Clamp(pct)).Div(hundred)
	return r.Scale(factor).NonNegative()
}
