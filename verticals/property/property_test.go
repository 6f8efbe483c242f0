package property

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

func TestPropertyScenarios(t *testing.T) {
	tests := []struct {
		name      string
		e         vertical.Evaluator
		inputs    map[string]string
		low, high string
	}{
		{"maintenance one hour hits the minimum", NewMaintenance(), nil, "100", "250"},
		{"maintenance custom rate weekly", NewMaintenance(), map[string]string{"hourly-rate": "200", "hours": "2", "frequency": "weekly"}, "320", "432"},
		{"maintenance add-ons before the minimum", NewMaintenance(), map[string]string{"filter-replacement": "on"}, "100", "250"},
		{"maintenance weekly below the minimum", NewMaintenance(), map[string]string{"frequency": "weekly", "hours": "1"}, "40", "97.2"},
		{"maintenance monthly below the minimum", NewMaintenance(), map[string]string{"frequency": "monthly", "hours": "1"}, "45", "108"},
		{"maintenance recurring add-on skips the minimum", NewMaintenance(), map[string]string{"frequency": "quarterly", "filter-replacement": "on"}, "70", "168.8"},
		{"maintenance large property", NewMaintenance(), map[string]string{"property-type": "large-residential", "hours": "4", "gutter-cleaning": "on"}, "360", "826"},

		{"junk half load of furniture", NewJunkRemoval(), map[string]string{"volume": "half", "type": "furniture"}, "330", "720"},
		{"junk minimum", NewJunkRemoval(), nil, "75", "150"},
		{"junk counts need their flag", NewJunkRemoval(), map[string]string{"mattresses": "4"}, "75", "150"},
		{"junk surcharges and demolition", NewJunkRemoval(), map[string]string{"mattress-surcharge": "on", "mattresses": "2", "demolition": "on", "demolition-hours": "3"}, "275", "600"},

		{"recycling empty order is free", NewRecycling(), nil, "0", "0"},
		{"recycling weekly bins", NewRecycling(), map[string]string{"bins": "3"}, "30", "45"},
		{"recycling items and shredding", NewRecycling(), map[string]string{"electronics": "on", "electronics-count": "2", "shredding": "on"}, "105", "250"},

		{"professional organizing", NewProfessional(), nil, "300", "720"},
		{"professional sourcing on subtotal", NewProfessional(), map[string]string{"travel": "on", "material-sourcing": "on", "follow-up": "on"}, "460", "1254"},
		{"professional short job hits the minimum", NewProfessional(), map[string]string{"hours": "1"}, "200", "400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := types.CostRange{Low: decimal.RequireFromString(tt.low), High: decimal.RequireFromString(tt.high)}
			if got := evaluate(t, tt.e, tt.inputs); !got.Equal(want) {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestJunkHintsFollowFlags(t *testing.T) {
	j := NewJunkRemoval()
	s := vertical.Defaults(j.Fields())
	if h := j.Hints(s); len(h.Hidden) != 4 {
		t.Errorf("expected 4 hidden inputs, got %v", h.Hidden)
	}
	s.SetFlag("tire-surcharge", true)
	if h := j.Hints(s); len(h.Hidden) != 3 {
		t.Errorf("expected 3 hidden inputs, got %v", h.Hidden)
	}
}
