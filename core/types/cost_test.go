package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTimesIsComponentWise(t *testing.T) {
	r := NewRange(300, 600).Times(Pair{Low: decimal.RequireFromString("1.1"), High: decimal.RequireFromString("1.2")})

	if !r.Equal(NewRange(330, 720)) {
		t.Errorf("expected 330 - 720, got %s", r)
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		name     string
		r        CostRange
		floor    Pair
		expected CostRange
	}{
		{"below floor", NewRange(40, 90), NewPair(75, 150), NewRange(75, 150)},
		{"above floor", NewRange(330, 720), NewPair(75, 150), NewRange(330, 720)},
		{"straddles floor", NewRange(50, 400), NewPair(75, 150), NewRange(75, 400)},
		{"no floor", NewRange(10, 20), Pair{}, NewRange(10, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Floor(tt.floor); !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestAddEach(t *testing.T) {
	r := NewRange(70, 90).AddEach(NewPair(15, 20), decimal.NewFromInt(3))
	if !r.Equal(NewRange(115, 150)) {
		t.Errorf("expected 115 - 150, got %s", r)
	}
}

func TestFormat(t *testing.T) {
	r := CostRange{Low: decimal.RequireFromString("121.5"), High: decimal.NewFromInt(171)}

	if got := r.Format(CurrencyUSD, 2); got != "$121.50 - $171.00" {
		t.Errorf("unexpected format %q", got)
	}
	if got := r.Format(Currency("CAD"), 0); got != "CAD 122 - CAD 171" {
		t.Errorf("unexpected format %q", got)
	}
}

func TestWellFormed(t *testing.T) {
	if !NewRange(1, 1).WellFormed() {
		t.Error("expected equal bounds to be well formed")
	}
	if NewRange(2, 1).WellFormed() {
		t.Error("expected inverted range to be flagged")
	}
}
