package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Garage prices garage door and opener work
type Garage struct{}

// NewGarage creates the garage services evaluator
func NewGarage() *Garage {
	return &Garage{}
}

func (g *Garage) ID() string    { return "garage-services" }
func (g *Garage) Title() string { return "Garage Door Services" }

func (g *Garage) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "door-repair").From("service"),
		vertical.Choice("severity", "Repair severity", "minor").From("severity"),
		vertical.Choice("door", "Door type", "single").From("door"),
		vertical.Choice("material", "Door material", "steel").From("material"),
		vertical.Flag("old-door-removal", "Old door removal"),
		vertical.Flag("keypad-remote", "Keypad or remote"),
		vertical.Flag("smart-opener", "Smart opener"),
	}
}

func (g *Garage) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")

	r := types.RangeOf(t.Pair("service", service))
	switch service {
	case "door-repair", "opener-repair":
		r = r.Times(t.Factor("severity", s.Choice("severity")))
	case "new-door":
		r = r.Times(t.Factor("door", s.Choice("door"))).
			Times(t.Factor("material", s.Choice("material")))
	}

	r = vertical.AddOns(r, s, t, "old-door-removal", "keypad-remote", "smart-opener")
	return r.Floor(t.Pair("minimum-fee"))
}

func (g *Garage) Hints(s vertical.State) vertical.Hints {
	switch s.Choice("service") {
	case "door-repair", "opener-repair":
		return vertical.Hints{Hidden: []string{"door", "material"}}
	case "new-door":
		return vertical.Hints{Hidden: []string{"severity"}}
	}
	return vertical.Hints{Hidden: []string{"severity", "door", "material"}}
}
