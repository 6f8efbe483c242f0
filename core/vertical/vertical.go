// Package vertical defines the contract every priced service category
// implements, the typed state it is evaluated against, and the helpers that
// keep that state inside its domain.
package vertical

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

// Evaluator prices one vertical
type Evaluator interface {
	// ID returns the vertical id, e.g. "lawn-care"
	ID() string

	// Title returns a human-readable name
	Title() string

	// Fields returns the input schema
	Fields() []Field

	// Evaluate computes the undiscounted range. It must not mutate s and
	// expects s to be normalized.
	Evaluate(s State, t *pricing.Table) types.CostRange
}

// Hints tell a presentation layer which inputs currently matter
type Hints struct {
	// Mode names the active input mode, if the vertical has one
	Mode string

	// AreaUnit is the unit area fields are currently measured in
	AreaUnit string

	// Hidden lists fields that do not affect the current result
	Hidden []string
}

// Hinter is implemented by verticals whose relevant inputs depend on state
type Hinter interface {
	Hints(s State) Hints
}

// AreaToggler is implemented by verticals with a square feet / acres switch.
// AreaFlag names the flag field that is on when areas are in acres.
type AreaToggler interface {
	AreaFlag() string
}

// Normalize returns a copy of s with every field present and inside its
// domain: missing values take their defaults, counts are truncated and
// raised to their floor, numbers and areas are clamped at zero, and empty
// choices fall back to the default. Normalize(Normalize(s)) == Normalize(s).
func Normalize(fields []Field, s State) State {
	out := s.Clone()
	for _, f := range fields {
		switch f.Kind {
		case KindCount:
			v, ok := out.numbers[f.Name]
			if !ok {
				v = parseNumber(f.Default)
			}
			v = v.Truncate(0)
			if floor := decimal.NewFromInt(f.Floor); v.LessThan(floor) {
				v = floor
			}
			out.numbers[f.Name] = v
		case KindNumber, KindArea:
			v, ok := out.numbers[f.Name]
			if !ok {
				v = parseNumber(f.Default)
			}
			if v.IsNegative() {
				v = decimal.Zero
			}
			out.numbers[f.Name] = v
		case KindChoice:
			if out.choices[f.Name] == "" {
				out.choices[f.Name] = f.Default
			}
		case KindFlag:
			if _, ok := out.flags[f.Name]; !ok {
				out.flags[f.Name] = parseFlag(f.Default)
			}
		}
	}
	return out
}

// Assign returns a copy of s with field name set from presentation text.
// Unknown fields are rejected; unparseable numbers become 0.
func Assign(fields []Field, s State, name, raw string) (State, error) {
	f, ok := Lookup(fields, name)
	if !ok {
		return s, errors.NotSupported("field " + name).WithContext("field", name)
	}
	out := s.Clone()
	f.assign(out, raw)
	return out, nil
}

// AdjustCount adds delta to a count field without letting it fall below
// the field's floor.
func AdjustCount(fields []Field, s State, name string, delta int64) (State, error) {
	f, ok := Lookup(fields, name)
	if !ok {
		return s, errors.NotSupported("field " + name).WithContext("field", name)
	}
	if f.Kind != KindCount {
		return s, errors.Newf(errors.TypeNotSupported, "field %s is a %s, not a count", name, f.Kind)
	}

	out := s.Clone()
	next := out.Int(name) + delta
	if next < f.Floor {
		next = f.Floor
	}
	out.SetNumber(name, decimal.NewFromInt(next))
	return out, nil
}

// Options returns the valid values of a choice field
func Options(f Field, t *pricing.Table) []string {
	if len(f.OptionsAt) > 0 {
		return t.Keys(f.OptionsAt...)
	}
	return f.Options
}

// OptionsIn returns the valid values of f in state s. It differs from
// Options only for fields declared with Per.
func OptionsIn(f Field, s State, t *pricing.Table) []string {
	if f.OptionsPer == "" || len(f.OptionsAt) == 0 {
		return Options(f, t)
	}
	path := append([]string{}, f.OptionsAt[:len(f.OptionsAt)-1]...)
	return t.Keys(append(path, s.Choice(f.OptionsPer))...)
}

// Validate checks every choice of s against its options. Evaluation itself
// never fails; this is for callers that want unknown selections reported.
func Validate(e Evaluator, s State, t *pricing.Table) error {
	var bad []string
	for _, f := range e.Fields() {
		if f.Kind != KindChoice {
			continue
		}
		opts := OptionsIn(f, s, t)
		if len(opts) == 0 {
			continue
		}
		v := s.Choice(f.Name)
		if !contains(opts, v) {
			bad = append(bad, fmt.Sprintf("%s=%q (want one of %s)", f.Name, v, strings.Join(opts, ", ")))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return errors.Input(e.ID()+": invalid selection: "+strings.Join(bad, "; ")).
		WithContext("vertical", e.ID())
}

// AddOns adds the flat add-on at add-ons.<name> for every flag in names
// that is set.
func AddOns(r types.CostRange, s State, t *pricing.Table, names ...string) types.CostRange {
	for _, name := range names {
		r = r.Add(s.When(name, t.Pair("add-ons", name)))
	}
	return r
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
