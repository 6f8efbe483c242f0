package units

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from, to Unit
		expected string
	}{
		{"same unit unchanged", "1234.567", SquareFeet, SquareFeet, "1234.567"},
		{"one acre", "43560", SquareFeet, Acres, "1"},
		{"sqft to acres keeps two decimals", "10000", SquareFeet, Acres, "0.23"},
		{"acres to sqft rounds to integer", "0.23", Acres, SquareFeet, "10019"},
		{"fractional acre", "1.5", Acres, SquareFeet, "65340"},
		{"zero", "0", Acres, SquareFeet, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(decimal.RequireFromString(tt.value), tt.from, tt.to)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

// Round trips stay within one display unit of the start value.
func TestRoundTripWithinOneUnit(t *testing.T) {
	for _, v := range []int64{0, 43560, 87120, 217800} {
		start := decimal.NewFromInt(v)
		back := Convert(Convert(start, SquareFeet, Acres), Acres, SquareFeet)
		if back.Sub(start).Abs().GreaterThan(decimal.NewFromInt(1)) {
			t.Errorf("round trip of %s drifted to %s", start, back)
		}
	}

	for _, a := range []string{"0.01", "0.25", "2.5", "12.34"} {
		start := decimal.RequireFromString(a)
		back := Convert(Convert(start, Acres, SquareFeet), SquareFeet, Acres)
		if back.Sub(start).Abs().GreaterThan(decimal.RequireFromString("0.01")) {
			t.Errorf("round trip of %s acres drifted to %s", start, back)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for _, in := range []string{"sqft", "sq.ft", " SQFT ", "square-feet"} {
		if u, err := ParseUnit(in); err != nil || u != SquareFeet {
			t.Errorf("ParseUnit(%q) = %v, %v", in, u, err)
		}
	}
	if u, err := ParseUnit("acre"); err != nil || u != Acres {
		t.Errorf("ParseUnit(acre) = %v, %v", u, err)
	}

	_, err := ParseUnit("hectare")
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error, got %v", err)
	}
}
