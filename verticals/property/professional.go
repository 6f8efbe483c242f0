package property

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Professional prices hourly consulting, organizing and staging
type Professional struct{}

// NewProfessional creates the professional services evaluator
func NewProfessional() *Professional {
	return &Professional{}
}

func (p *Professional) ID() string    { return "professional" }
func (p *Professional) Title() string { return "Professional Services" }

func (p *Professional) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service type", "home-organizing").From("service"),
		vertical.Number("hours", "Estimated hours", 4),
		vertical.Choice("expertise", "Expertise level", "standard").From("expertise"),
		vertical.Flag("travel", "Travel fee"),
		vertical.Flag("material-sourcing", "Material sourcing"),
		vertical.Flag("follow-up", "Follow-up session"),
	}
}

// Evaluate computes the professional services range. Material sourcing is
// a share of the subtotal after travel and before follow-up.
func (p *Professional) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	r := types.Zero().AddEach(t.Pair("hourly"), s.Number("hours")).
		Times(t.Factor("service", s.Choice("service"))).
		Times(t.Factor("expertise", s.Choice("expertise")))

	r = vertical.AddOns(r, s, t, "travel")
	if s.Flag("material-sourcing") {
		r = r.AddRange(r.Times(t.Pair("percent", "material-sourcing")))
	}
	r = vertical.AddOns(r, s, t, "follow-up")

	return r.Floor(t.Pair("minimum-fee"))
}
