package pets

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// DogWalking prices single walks and walk packages
type DogWalking struct{}

// NewDogWalking creates the dog walking evaluator
func NewDogWalking() *DogWalking {
	return &DogWalking{}
}

func (d *DogWalking) ID() string    { return "dog-walking" }
func (d *DogWalking) Title() string { return "Dog Walking" }

func (d *DogWalking) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Count("dogs", "Dogs", 1, 1),
		vertical.Choice("walk-minutes", "Walk length (minutes)", "30").From("walk"),
		vertical.Choice("frequency", "Frequency", "one-time", "one-time", "daily", "weekly", "monthly"),
		vertical.Flag("weekend", "Weekend or holiday"),
		vertical.Flag("additional-services", "Additional services"),
		vertical.Flag("puppy-senior", "Puppy or senior care"),
	}
}

// Evaluate computes the walking range. Packages multiply the per-walk
// price by the package's walk count and discount.
func (d *DogWalking) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	walk := types.RangeOf(t.Pair("walk", s.Choice("walk-minutes"))).
		AddEach(t.Pair("extra-dog"), extraDogs(s.Number("dogs")))

	r := walk
	if frequency := s.Choice("frequency"); frequency != "one-time" {
		r = walk.Scale(t.Scalar("walks", frequency)).Times(t.Factor("package", frequency))
	}

	r = vertical.AddOns(r, s, t, "weekend", "additional-services", "puppy-senior")
	return r.Floor(t.Pair("minimum-fee"))
}
