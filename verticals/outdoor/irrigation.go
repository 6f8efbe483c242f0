package outdoor

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Irrigation prices sprinkler installation and service
type Irrigation struct{}

// NewIrrigation creates the irrigation evaluator
func NewIrrigation() *Irrigation {
	return &Irrigation{}
}

func (i *Irrigation) ID() string    { return "irrigation" }
func (i *Irrigation) Title() string { return "Irrigation" }

func (i *Irrigation) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "new-installation",
			"new-installation", "repair", "system-audit", "seasonal-maintenance"),
		vertical.Count("zones", "Zones", 4, 0),
		vertical.Number("hours", "Estimated hours", 1),
		vertical.Choice("size", "Property size", "small").From("size"),
		vertical.Flag("drip-system", "Drip system"),
		vertical.Flag("rain-sensor", "Rain sensor"),
		vertical.Flag("backflow-testing", "Backflow testing"),
	}
}

func (i *Irrigation) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	var r types.CostRange
	switch s.Choice("service") {
	case "new-installation":
		r = types.RangeOf(t.Pair("installation")).AddEach(t.Pair("per-zone"), s.Number("zones"))
	case "repair", "system-audit":
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	case "seasonal-maintenance":
		r = types.RangeOf(t.Pair("seasonal"))
	default:
		r = types.Zero()
	}
	r = r.Times(t.Factor("size", s.Choice("size")))

	r = vertical.AddOns(r, s, t, "drip-system", "rain-sensor", "backflow-testing")
	return r.Floor(t.Pair("minimum-fee"))
}

func (i *Irrigation) Hints(s vertical.State) vertical.Hints {
	switch s.Choice("service") {
	case "new-installation":
		return vertical.Hints{Hidden: []string{"hours"}}
	case "repair", "system-audit":
		return vertical.Hints{Hidden: []string{"zones"}}
	}
	return vertical.Hints{Hidden: []string{"zones", "hours"}}
}
