package vertical

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the value type of a field
type Kind int

const (
	// KindNumber is a non-negative plain number such as hours or feet
	KindNumber Kind = iota

	// KindCount is a whole number with a floor
	KindCount

	// KindArea is a number measured in the vertical's area unit
	KindArea

	// KindChoice is one option out of a set
	KindChoice

	// KindFlag is an on/off toggle
	KindFlag
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindCount:
		return "count"
	case KindArea:
		return "area"
	case KindChoice:
		return "choice"
	case KindFlag:
		return "flag"
	}
	return "unknown"
}

// IsNumeric reports whether the kind stores a number
func (k Kind) IsNumeric() bool {
	return k == KindNumber || k == KindCount || k == KindArea
}

// Field describes one input of a vertical
type Field struct {
	// Name is the state key
	Name string

	// Label is a human-readable description
	Label string

	// Kind is the value type
	Kind Kind

	// Default is the initial value as text
	Default string

	// Floor is the smallest allowed value of a count
	Floor int64

	// Options lists the valid values of a choice not backed by a table
	Options []string

	// OptionsAt is the pricing table path whose keys are the valid values
	OptionsAt []string

	// OptionsPer names a choice whose current value replaces the last
	// segment of OptionsAt when validating a state
	OptionsPer string
}

// Number declares a plain number field
func Number(name, label string, def int64) Field {
	return Field{Name: name, Label: label, Kind: KindNumber, Default: strconv.FormatInt(def, 10)}
}

// Count declares a whole-number field that never drops below floor
func Count(name, label string, def, floor int64) Field {
	return Field{Name: name, Label: label, Kind: KindCount, Default: strconv.FormatInt(def, 10), Floor: floor}
}

// Area declares an area field
func Area(name, label string, def int64) Field {
	return Field{Name: name, Label: label, Kind: KindArea, Default: strconv.FormatInt(def, 10)}
}

// Choice declares a choice field with a fixed option list
func Choice(name, label, def string, options ...string) Field {
	return Field{Name: name, Label: label, Kind: KindChoice, Default: def, Options: options}
}

// Flag declares an on/off field
func Flag(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindFlag, Default: "false"}
}

// From marks a choice as taking its options from the table keys at path
func (f Field) From(path ...string) Field {
	f.OptionsAt = path
	return f
}

// Per makes the last segment of the options path follow the choice name
func (f Field) Per(name string) Field {
	f.OptionsPer = name
	return f
}

// On sets a flag's default to true
func (f Field) On() Field {
	f.Default = "true"
	return f
}

func (f Field) applyDefault(s State) {
	switch {
	case f.Kind.IsNumeric():
		s.SetNumber(f.Name, parseNumber(f.Default))
	case f.Kind == KindChoice:
		s.SetChoice(f.Name, f.Default)
	case f.Kind == KindFlag:
		s.SetFlag(f.Name, parseFlag(f.Default))
	}
}

// assign stores raw into s using the field's kind
func (f Field) assign(s State, raw string) {
	switch {
	case f.Kind.IsNumeric():
		s.SetNumber(f.Name, parseNumber(raw))
	case f.Kind == KindChoice:
		s.SetChoice(f.Name, strings.TrimSpace(raw))
	case f.Kind == KindFlag:
		s.SetFlag(f.Name, parseFlag(raw))
	}
}

// parseNumber reads presentation text. Anything that is not a number is 0.
func parseNumber(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}

// Lookup finds a field by name
func Lookup(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
