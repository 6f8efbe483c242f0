package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Appliance prices household appliance repair
type Appliance struct{}

// NewAppliance creates the appliance repair evaluator
func NewAppliance() *Appliance {
	return &Appliance{}
}

func (a *Appliance) ID() string    { return "appliance-repair" }
func (a *Appliance) Title() string { return "Appliance Repair" }

func (a *Appliance) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("appliance", "Appliance", "refrigerator").From("appliance"),
		vertical.Choice("severity", "Issue severity", "minor").From("severity"),
		vertical.Choice("urgency", "Urgency", "standard").From("urgency"),
		vertical.Flag("diagnostic", "Diagnostic fee").On(),
		vertical.Flag("parts", "Parts needed"),
	}
}

// Evaluate computes the repair range. The urgency surcharge is added after
// the severity tier so it is never scaled.
func (a *Appliance) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	r := vertical.AddOns(types.Zero(), s, t, "diagnostic")

	repair := types.RangeOf(t.Pair("appliance", s.Choice("appliance"))).
		Times(t.Factor("severity", s.Choice("severity")))
	r = r.AddRange(repair).Add(t.Pair("urgency", s.Choice("urgency")))

	r = vertical.AddOns(r, s, t, "parts")
	return r.Floor(t.Pair("minimum-fee"))
}
