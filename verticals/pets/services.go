package pets

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// PetServices prices grooming, sitting, boarding and daycare
type PetServices struct{}

// NewPetServices creates the pet services evaluator
func NewPetServices() *PetServices {
	return &PetServices{}
}

func (p *PetServices) ID() string    { return "pet-services" }
func (p *PetServices) Title() string { return "Pet Services" }

func (p *PetServices) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "grooming", "grooming", "sitting", "boarding", "daycare"),
		vertical.Choice("pet", "Pet type", "dog").From("grooming"),
		vertical.Choice("size", "Pet size", "small").From("grooming", "dog").Per("pet"),
		vertical.Choice("package", "Grooming package", "basic").From("package"),
		vertical.Count("duration", "Days or nights", 1, 1),
		vertical.Flag("special-needs", "Special needs"),
		vertical.Flag("playtime", "Extra playtime"),
		vertical.Flag("transport", "Transportation"),
	}
}

// Evaluate computes the pet services range. Small pets other than dogs and
// cats have a single grooming rate regardless of size.
func (p *PetServices) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	r := types.Zero()
	switch s.Choice("service") {
	case "grooming":
		pet := s.Choice("pet")
		rate, ok := t.Lookup("grooming", pet)
		if !ok {
			rate = t.Pair("grooming", pet, s.Choice("size"))
		}
		r = types.RangeOf(rate).Times(t.Factor("package", s.Choice("package")))
	case "sitting":
		r = r.AddEach(t.Pair("sitting"), s.Number("duration"))
	case "boarding":
		r = r.AddEach(t.Pair("boarding"), s.Number("duration"))
	case "daycare":
		r = types.RangeOf(t.Pair("daycare"))
	}

	r = vertical.AddOns(r, s, t, "special-needs", "playtime", "transport")
	return r.Floor(t.Pair("minimum-fee"))
}

func (p *PetServices) Hints(s vertical.State) vertical.Hints {
	switch s.Choice("service") {
	case "grooming":
		if s.Is("pet", "other-small") {
			return vertical.Hints{Mode: "grooming", Hidden: []string{"size", "duration"}}
		}
		return vertical.Hints{Mode: "grooming", Hidden: []string{"duration"}}
	case "daycare":
		return vertical.Hints{Mode: "care", Hidden: []string{"pet", "size", "package", "duration"}}
	}
	return vertical.Hints{Mode: "care", Hidden: []string{"pet", "size", "package"}}
}
