package vertical

import (
	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/determinism"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
)

// State is the typed record of one vertical's selections.
// The zero value is not usable; create states with NewState or Defaults.
type State struct {
	numbers map[string]decimal.Decimal
	choices map[string]string
	flags   map[string]bool
}

// NewState creates an empty state
func NewState() State {
	return State{
		numbers: make(map[string]decimal.Decimal),
		choices: make(map[string]string),
		flags:   make(map[string]bool),
	}
}

// Defaults builds a state holding every field's default value
func Defaults(fields []Field) State {
	s := NewState()
	for _, f := range fields {
		f.applyDefault(s)
	}
	return s
}

// Number returns a numeric field, or zero when unset
func (s State) Number(name string) decimal.Decimal {
	return s.numbers[name]
}

// Int returns a numeric field truncated to an integer
func (s State) Int(name string) int64 {
	return s.numbers[name].IntPart()
}

// Choice returns a choice field, or "" when unset
func (s State) Choice(name string) string {
	return s.choices[name]
}

// Flag returns a flag field, or false when unset
func (s State) Flag(name string) bool {
	return s.flags[name]
}

// Has reports whether any value is stored under name
func (s State) Has(name string) bool {
	if _, ok := s.numbers[name]; ok {
		return true
	}
	if _, ok := s.choices[name]; ok {
		return true
	}
	_, ok := s.flags[name]
	return ok
}

// Is reports whether a choice field equals value
func (s State) Is(name, value string) bool {
	return s.choices[name] == value
}

// SetNumber stores a numeric field
func (s State) SetNumber(name string, v decimal.Decimal) {
	s.numbers[name] = v
}

// SetChoice stores a choice field
func (s State) SetChoice(name, v string) {
	s.choices[name] = v
}

// SetFlag stores a flag field
func (s State) SetFlag(name string, v bool) {
	s.flags[name] = v
}

// When returns p if the flag is set and a zero pair otherwise
func (s State) When(flag string, p types.Pair) types.Pair {
	if s.flags[flag] {
		return p
	}
	return types.Pair{}
}

// Clone returns a deep copy
func (s State) Clone() State {
	c := NewState()
	for k, v := range s.numbers {
		c.numbers[k] = v
	}
	for k, v := range s.choices {
		c.choices[k] = v
	}
	for k, v := range s.flags {
		c.flags[k] = v
	}
	return c
}

// Equal compares two states value by value
func (s State) Equal(o State) bool {
	if len(s.numbers) != len(o.numbers) || len(s.choices) != len(o.choices) || len(s.flags) != len(o.flags) {
		return false
	}
	for k, v := range s.numbers {
		ov, ok := o.numbers[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	for k, v := range s.choices {
		if ov, ok := o.choices[k]; !ok || ov != v {
			return false
		}
	}
	for k, v := range s.flags {
		if ov, ok := o.flags[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Entries lists every set value as display text, sorted by field name
func (s State) Entries() [][2]string {
	out := make([][2]string, 0, len(s.numbers)+len(s.choices)+len(s.flags))
	all := make(map[string]string, cap(out))
	for k, v := range s.numbers {
		all[k] = v.String()
	}
	for k, v := range s.choices {
		all[k] = v
	}
	for k, v := range s.flags {
		if v {
			all[k] = "on"
		} else {
			all[k] = "off"
		}
	}
	determinism.RangeMapSorted(all, func(k, v string) bool {
		out = append(out, [2]string{k, v})
		return true
	})
	return out
}
