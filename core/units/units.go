// Package units - Area unit conversion between square feet and acres
package units

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

// Unit is an area measurement unit
type Unit string

const (
	SquareFeet Unit = "sqft"
	Acres      Unit = "acres"
)

// SquareFeetPerAcre is the fixed conversion ratio
const SquareFeetPerAcre = 43560

var ratio = decimal.NewFromInt(SquareFeetPerAcre)

// aliases accepted by ParseUnit
var aliases = map[string]Unit{
	"sqft":        SquareFeet,
	"sq.ft":       SquareFeet,
	"sq-ft":       SquareFeet,
	"square-feet": SquareFeet,
	"ft2":         SquareFeet,
	"acre":        Acres,
	"acres":       Acres,
	"ac":          Acres,
}

// ParseUnit resolves a unit name
func ParseUnit(s string) (Unit, error) {
	if u, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown area unit: %q", s)
}

// String returns the display label
func (u Unit) String() string {
	return string(u)
}

// Convert rewrites value from one unit to the other. Square feet to acres
// keeps two decimals; acres to square feet rounds to a whole number.
func Convert(value decimal.Decimal, from, to Unit) decimal.Decimal {
	if from == to {
		return value
	}
	switch {
	case from == SquareFeet && to == Acres:
		return value.Div(ratio).Round(2)
	case from == Acres && to == SquareFeet:
		return value.Mul(ratio).Round(0)
	}
	return value
}

// ForFlag maps a "large unit" toggle to its unit
func ForFlag(acres bool) Unit {
	if acres {
		return Acres
	}
	return SquareFeet
}
