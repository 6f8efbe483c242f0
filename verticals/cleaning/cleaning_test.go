package cleaning

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

func evaluate(t *testing.T, e vertical.Evaluator, inputs map[string]string) types.CostRange {
	t.Helper()
	catalog, err := pricing.Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := vertical.Defaults(e.Fields())
	for name, raw := range inputs {
		if s, err = vertical.Assign(e.Fields(), s, name, raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return e.Evaluate(vertical.Normalize(e.Fields(), s), catalog.MustTable(e.ID()))
}

func expectRange(t *testing.T, got types.CostRange, low, high string) {
	t.Helper()
	want := types.CostRange{Low: decimal.RequireFromString(low), High: decimal.RequireFromString(high)}
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHouseCleaning(t *testing.T) {
	tests := []struct {
		name      string
		inputs    map[string]string
		low, high string
	}{
		{"monthly by rooms", map[string]string{"visit": "monthly", "bedrooms": "3", "bathrooms": "2"}, "135", "180"},
		{"defaults", nil, "125", "165"},
		{"by sqft ignores rooms", map[string]string{"visit": "monthly", "by-sqft": "true", "sqft": "1000", "bedrooms": "5"}, "120", "240"},
		{"sqft rounded to whole units", map[string]string{"visit": "weekly", "by-sqft": "true", "sqft": "1005"}, "100", "216"},
		{"add-ons stack", map[string]string{"visit": "weekly", "floors": "on", "laundry": "on"}, "100", "135"},
		{"unknown visit contributes nothing", map[string]string{"visit": "daily", "bedrooms": "1", "bathrooms": "1"}, "25", "35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectRange(t, evaluate(t, NewHouse(), tt.inputs), tt.low, tt.high)
		})
	}
}

func TestHouseHints(t *testing.T) {
	s := vertical.Defaults(NewHouse().Fields())
	if h := NewHouse().Hints(s); h.Mode != "rooms" {
		t.Errorf("expected rooms mode, got %s", h.Mode)
	}
	s.SetFlag("by-sqft", true)
	if h := NewHouse().Hints(s); h.Mode != "sqft" || len(h.Hidden) != 2 {
		t.Errorf("expected sqft mode hiding rooms, got %+v", h)
	}
}

func TestCarpetCleaning(t *testing.T) {
	tests := []struct {
		name      string
		inputs    map[string]string
		low, high string
	}{
		{"single room hits the minimum", nil, "100", "200"},
		{"rooms scaled by condition", map[string]string{"rooms": "3", "condition": "medium"}, "180", "336"},
		{"by sqft", map[string]string{"measure": "sqft", "sqft": "1000"}, "250", "500"},
		{"protector charged on sqft in rooms mode", map[string]string{"rooms": "4", "protector": "on", "sqft": "500"}, "250", "420"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectRange(t, evaluate(t, NewCarpet(), tt.inputs), tt.low, tt.high)
		})
	}
}

func TestJanitorialRestroomVisits(t *testing.T) {
	// 2000 sqft office weekly: 200/400, plus one restroom four times a month
	expectRange(t, evaluate(t, NewJanitorial(), nil), "280", "600")

	// monthly: 60/160 area, one restroom visit, floored at 200/500
	expectRange(t, evaluate(t, NewJanitorial(), map[string]string{"frequency": "monthly"}), "200", "500")
}
