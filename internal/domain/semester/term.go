package semester

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Term is the name of an academic term within a year.
type Term string

// Terms of the default table.
const (
	Spring Term = "Spring"
	Summer Term = "Summer"
	Fall   Term = "Fall"
)

// TermsPerYear is the number of terms a table must hold.
const TermsPerYear = 3

// String returns the term name.
func (t Term) String() string {
	return string(t)
}

// TermDef binds a term name to the digit that encodes it and the first
// day-of-year on which the term is considered current.
type TermDef struct {
	Name     Term
	Digit    int
	StartDay int
}

// TermTable is an ordered, immutable mapping of terms to digits. Terms are
// kept in calendar order; lookups by name are case-insensitive.
type TermTable struct {
	defs [TermsPerYear]TermDef
}

// DefaultTermTable returns the Spring=4, Summer=6, Fall=8 table, with Summer
// starting on day 126 and Fall on day 226.
func DefaultTermTable() TermTable {
	return TermTable{defs: [TermsPerYear]TermDef{
		{Name: Spring, Digit: 4, StartDay: 1},
		{Name: Summer, Digit: 6, StartDay: 126},
		{Name: Fall, Digit: 8, StartDay: 226},
	}}
}

// NewTermTable builds a table from definitions given in calendar order.
// Names are title-cased. It returns ErrInvalidTermTable if there are not
// exactly TermsPerYear definitions, if digits are not distinct even values in
// 0..8 increasing with calendar order, if names are empty, repeated or contain
// whitespace, or if start days do not increase from day 1.
func NewTermTable(defs ...TermDef) (TermTable, error) {
	if len(defs) != TermsPerYear {
		return TermTable{}, fmt.Errorf("%w: want %d terms, got %d", ErrInvalidTermTable, TermsPerYear, len(defs))
	}

	caser := cases.Title(language.English)
	var table TermTable
	for i, def := range defs {
		def.Name = Term(caser.String(strings.TrimSpace(string(def.Name))))
		table.defs[i] = def
	}

	if err := table.validate(); err != nil {
		return TermTable{}, err
	}
	return table, nil
}

func (t TermTable) validate() error {
	for i, def := range t.defs {
		if def.Name == "" {
			return fmt.Errorf("%w: term %d has no name", ErrInvalidTermTable, i)
		}
		if strings.IndexFunc(string(def.Name), unicode.IsSpace) >= 0 {
			return fmt.Errorf("%w: term name %q contains whitespace", ErrInvalidTermTable, def.Name)
		}
		if def.Digit < 0 || def.Digit > 8 || def.Digit%2 != 0 {
			return fmt.Errorf("%w: digit %d for %s must be even and in 0..8", ErrInvalidTermTable, def.Digit, def.Name)
		}
		if def.StartDay < 1 || def.StartDay > 366 {
			return fmt.Errorf("%w: start day %d for %s must be in 1..366", ErrInvalidTermTable, def.StartDay, def.Name)
		}
		if i == 0 {
			if def.StartDay != 1 {
				return fmt.Errorf("%w: first term must start on day 1", ErrInvalidTermTable)
			}
			continue
		}

		prev := t.defs[i-1]
		if def.Digit <= prev.Digit {
			return fmt.Errorf("%w: digit of %s must be greater than digit of %s", ErrInvalidTermTable, def.Name, prev.Name)
		}
		if def.StartDay <= prev.StartDay {
			return fmt.Errorf("%w: %s must start after %s", ErrInvalidTermTable, def.Name, prev.Name)
		}
		for _, other := range t.defs[:i] {
			if strings.EqualFold(string(other.Name), string(def.Name)) {
				return fmt.Errorf("%w: duplicate term %s", ErrInvalidTermTable, def.Name)
			}
		}
	}
	return nil
}

// Defs returns the term definitions in calendar order.
func (t TermTable) Defs() []TermDef {
	defs := make([]TermDef, TermsPerYear)
	copy(defs, t.defs[:])
	return defs
}

// Terms enumerates the term names in calendar order.
func (t TermTable) Terms() []Term {
	terms := make([]Term, 0, TermsPerYear)
	for _, def := range t.defs {
		terms = append(terms, def.Name)
	}
	return terms
}

// Digits enumerates the term digits in calendar order.
func (t TermTable) Digits() []int {
	digits := make([]int, 0, TermsPerYear)
	for _, def := range t.defs {
		digits = append(digits, def.Digit)
	}
	return digits
}

// Lookup finds the definition of a term name, ignoring case.
func (t TermTable) Lookup(name string) (TermDef, bool) {
	for _, def := range t.defs {
		if strings.EqualFold(string(def.Name), name) {
			return def, true
		}
	}
	return TermDef{}, false
}

// Digit returns the digit encoding the named term.
func (t TermTable) Digit(name Term) (int, bool) {
	def, ok := t.Lookup(string(name))
	return def.Digit, ok
}

// TermForDigit is the partial reverse lookup of Digit.
func (t TermTable) TermForDigit(digit int) (Term, error) {
	idx, ok := t.index(digit)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnmappedDigit, digit)
	}
	return t.defs[idx].Name, nil
}

// TermForDay returns the term that is current on the given day of the year:
// the last term whose start day is not after day.
func (t TermTable) TermForDay(day int) Term {
	term := t.defs[0].Name
	for _, def := range t.defs[1:] {
		if day >= def.StartDay {
			term = def.Name
		}
	}
	return term
}

// index returns the zero-based calendar position of a digit.
func (t TermTable) index(digit int) (int, bool) {
	for i, def := range t.defs {
		if def.Digit == digit {
			return i, true
		}
	}
	return 0, false
}
