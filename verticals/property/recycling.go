package property

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

var recyclingItems = []string{"appliance", "electronics", "tires", "furniture"}

// Recycling prices bin pickups and specialty item drop-offs
type Recycling struct{}

// NewRecycling creates the recycling evaluator
func NewRecycling() *Recycling {
	return &Recycling{}
}

func (r *Recycling) ID() string    { return "recycling" }
func (r *Recycling) Title() string { return "Recycling" }

// Fields returns the input schema. Each specialty item has a flag named
// after it and a <item>-count quantity.
func (r *Recycling) Fields() []vertical.Field {
	fields := []vertical.Field{
		vertical.Choice("frequency", "Pickup frequency", "weekly").From("bin"),
		vertical.Count("bins", "Standard bins", 0, 0),
	}
	for _, item := range recyclingItems {
		fields = append(fields,
			vertical.Flag(item, "Remove "+item),
			vertical.Count(item+"-count", "Number of "+item, 1, 0),
		)
	}
	return append(fields,
		vertical.Flag("shredding", "Document shredding"),
		vertical.Flag("hazardous", "Hazardous waste"),
	)
}

// Evaluate computes the recycling range. There is no minimum fee, so an
// empty order prices at zero.
func (r *Recycling) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	cost := types.Zero().AddEach(t.Pair("bin", s.Choice("frequency")), s.Number("bins"))
	for _, item := range recyclingItems {
		cost = cost.AddEach(s.When(item, t.Pair("item", item)), s.Number(item+"-count"))
	}
	cost = vertical.AddOns(cost, s, t, "shredding", "hazardous")

	return cost.Floor(t.Pair("minimum-fee"))
}

func (r *Recycling) Hints(s vertical.State) vertical.Hints {
	var h vertical.Hints
	for _, item := range recyclingItems {
		if !s.Flag(item) {
			h.Hidden = append(h.Hidden, item+"-count")
		}
	}
	return h
}
