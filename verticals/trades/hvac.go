package trades

import (
	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

var (
	smallHome  = decimal.NewFromInt(1500)
	mediumHome = decimal.NewFromInt(3000)
)

// HVAC prices heating and cooling work
type HVAC struct{}

// NewHVAC creates the HVAC evaluator
func NewHVAC() *HVAC {
	return &HVAC{}
}

func (h *HVAC) ID() string    { return "hvac" }
func (h *HVAC) Title() string { return "HVAC" }

func (h *HVAC) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "diagnostic-repair",
			"diagnostic-repair", "maintenance", "new-installation", "ductwork"),
		vertical.Choice("system", "System type", "central-ac").From("system"),
		vertical.Area("property-sqft", "Property size (sq ft)", 2000),
		vertical.Choice("repair-complexity", "Repair complexity", "minor").From("repair-complexity"),
		vertical.Flag("air-quality", "Air quality"),
		vertical.Flag("smart-thermostat", "Smart thermostat"),
		vertical.Flag("emergency", "Emergency service"),
		vertical.Flag("permit", "Permit required"),
	}
}

// Evaluate computes the HVAC range
func (h *HVAC) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	tier := t.Factor("size-tier", SizeTier(s.Number("property-sqft")))

	var r types.CostRange
	switch s.Choice("service") {
	case "diagnostic-repair":
		r = types.RangeOf(t.Pair("diagnostic-repair")).
			Times(t.Factor("repair-complexity", s.Choice("repair-complexity")))
	case "maintenance":
		r = types.RangeOf(t.Pair("maintenance"))
	case "new-installation":
		r = types.RangeOf(t.Pair("installation")).
			Times(t.Factor("system", s.Choice("system"))).
			Times(tier)
	case "ductwork":
		r = types.RangeOf(t.Pair("ductwork")).Times(tier)
	default:
		r = types.Zero()
	}

	r = vertical.AddOns(r, s, t, "air-quality", "smart-thermostat", "emergency", "permit")
	return r.Floor(t.Pair("minimum-fee"))
}

// SizeTier maps a property size to its size-tier key
func SizeTier(sqft decimal.Decimal) string {
	switch {
	case sqft.LessThanOrEqual(smallHome):
		return "500-1500"
	case sqft.LessThanOrEqual(mediumHome):
		return "1501-3000"
	}
	return "3001+"
}
