package outdoor

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Paving prices driveways, walkways and parking lots
type Paving struct{}

// NewPaving creates the paving evaluator
func NewPaving() *Paving {
	return &Paving{}
}

func (p *Paving) ID() string    { return "paving" }
func (p *Paving) Title() string { return "Paving" }

func (p *Paving) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "new-installation",
			"new-installation", "resurfacing", "repair-patching", "removal-replacement"),
		vertical.Choice("surface", "Surface", "driveway", "driveway", "walkway", "patio", "parking-lot"),
		vertical.Choice("material", "Material", "asphalt").From("material"),
		vertical.Area("sqft", "Area (sq ft)", 500),
		vertical.Choice("thickness", "Thickness (in)", "3").From("thickness"),
		vertical.Choice("site-prep", "Site preparation", "basic").From("site-prep"),
		vertical.Count("patches", "Patches", 1, 1),
		vertical.Flag("sealcoating", "Sealcoating"),
		vertical.Flag("drainage", "Drainage solutions"),
		vertical.Flag("edging", "Edging and borders"),
		vertical.Flag("line-striping", "Line striping"),
	}
}

// Evaluate computes the paving range
func (p *Paving) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	material := s.Choice("material")
	sqft := s.Number("sqft")

	var r types.CostRange
	if s.Is("service", "repair-patching") {
		r = types.Zero().AddEach(t.Pair("per-patch"), s.Number("patches"))
	} else {
		r = types.Zero().AddEach(t.Pair("material", material), sqft)
		r = r.Times(t.Factor("service", s.Choice("service")))
		if material == "asphalt" || material == "concrete" {
			r = r.Times(t.Factor("thickness", s.Choice("thickness")))
		}
		r = r.Times(t.Factor("site-prep", s.Choice("site-prep")))
	}

	if material == "asphalt" {
		r = r.AddEach(s.When("sealcoating", t.Pair("sealcoating")), sqft)
	}
	r = vertical.AddOns(r, s, t, "drainage")
	// edging runs around a square of the same area
	r = r.AddEach(s.When("edging", t.Pair("edging")), perimeter(sqft))
	if s.Is("surface", "parking-lot") {
		r = vertical.AddOns(r, s, t, "line-striping")
	}

	return r.Floor(t.Pair("minimum-fee"))
}

func perimeter(area decimal.Decimal) decimal.Decimal {
	side := math.Sqrt(area.InexactFloat64())
	return decimal.NewFromFloat(side).Mul(decimal.NewFromInt(4))
}
