// Package verticals - Service vertical registration
package verticals

import (
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
	"github.com/harleytans/reputigo-universal-calculator/verticals/cleaning"
	"github.com/harleytans/reputigo-universal-calculator/verticals/outdoor"
	"github.com/harleytans/reputigo-universal-calculator/verticals/pets"
	"github.com/harleytans/reputigo-universal-calculator/verticals/property"
	"github.com/harleytans/reputigo-universal-calculator/verticals/trades"
)

// DefaultVertical is selected when no other vertical is requested
const DefaultVertical = "cleaning"

// All returns one evaluator per supported vertical
func All() []vertical.Evaluator {
	return []vertical.Evaluator{
		// Cleaning
		cleaning.NewHouse(),
		cleaning.NewWindow(),
		cleaning.NewCarpet(),
		cleaning.NewJanitorial(),
		cleaning.NewPressure(),

		// Outdoor
		outdoor.NewLawn(),
		outdoor.NewLandscaping(),
		outdoor.NewTree(),
		outdoor.NewIrrigation(),
		outdoor.NewFence(),
		outdoor.NewPaving(),
		outdoor.NewPool(),

		// Trades
		trades.NewPainting(),
		trades.NewFlooring(),
		trades.NewRoofing(),
		trades.NewPlumbing(),
		trades.NewElectrical(),
		trades.NewHVAC(),
		trades.NewCarpentry(),
		trades.NewHandyman(),
		trades.NewInstallation(),
		trades.NewAppliance(),
		trades.NewGarage(),
		trades.NewChimney(),
		trades.NewLocksmith(),

		// Pets
		pets.NewPooperScooper(),
		pets.NewDogWalking(),
		pets.NewPetServices(),

		// Property
		property.NewMaintenance(),
		property.NewJunkRemoval(),
		property.NewRecycling(),
		property.NewProfessional(),
	}
}

// RegisterAll registers every supported vertical
func RegisterAll(r *vertical.Registry) error {
	for _, e := range All() {
		if err := r.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every supported vertical
func NewRegistry() (*vertical.Registry, error) {
	r := vertical.NewRegistry()
	if err := RegisterAll(r); err != nil {
		return nil, err
	}
	return r, nil
}

// SupportedVerticals returns the ids of all supported verticals
func SupportedVerticals() []string {
	all := All()
	ids := make([]string, 0, len(all))
	for _, e := range all {
		ids = append(ids, e.ID())
	}
	return ids
}
