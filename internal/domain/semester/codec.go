package semester

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ZeroYear is the epoch from which the year part of a code is counted.
const ZeroYear = 1900

// MaxShift is the number of semesters from the first term of ZeroYear to the
// last term of LastYear, rounded up to whole years. No shift of a larger
// magnitude can stay in range.
const MaxShift = (LastYear - ZeroYear + 1) * TermsPerYear

// Codec converts semesters between the integer code 10*(year-ZeroYear)+digit
// and the canonical "Term Year" string, using the digits of its term table.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	table   TermTable
	pattern *regexp.Regexp
}

var defaultCodec = mustNewCodec(DefaultTermTable())

// NewCodec creates a codec for the given term table.
func NewCodec(table TermTable) (*Codec, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0, TermsPerYear)
	for _, term := range table.Terms() {
		names = append(names, regexp.QuoteMeta(string(term)))
	}

	return &Codec{
		table:   table,
		pattern: regexp.MustCompile(`(?i)(` + strings.Join(names, "|") + `) (\d{4})`),
	}, nil
}

func mustNewCodec(table TermTable) *Codec {
	c, err := NewCodec(table)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCodec returns the codec for DefaultTermTable.
func DefaultCodec() *Codec {
	return defaultCodec
}

// Table returns the codec's term table.
func (c *Codec) Table() TermTable {
	return c.table
}

// IsValidCode reports whether code is non-negative and ends in a term digit.
func (c *Codec) IsValidCode(code int) bool {
	if code < 0 {
		return false
	}
	_, ok := c.table.index(code % 10)
	return ok
}

// IsValidString reports whether text contains a "Term Year" pair, such as
// "Fall 2024" or "fall 2024". The pair may appear anywhere in text.
// It checks the form only: a year before ZeroYear, as in "Spring 1899",
// is well formed but StringToCode rejects it.
func (c *Codec) IsValidString(text string) bool {
	return c.pattern.MatchString(text)
}

// CodeToYear returns the calendar year encoded in code. The code is not validated.
func (c *Codec) CodeToYear(code int) int {
	return (code-code%10)/10 + ZeroYear
}

// CodeToTerm returns the term encoded by the last digit of code.
func (c *Codec) CodeToTerm(code int) (Term, error) {
	return c.table.TermForDigit(code % 10)
}

// CodeToTermName is CodeToTerm returning a plain string.
func (c *Codec) CodeToTermName(code int) (string, error) {
	term, err := c.CodeToTerm(code)
	if err != nil {
		return "", err
	}
	return term.String(), nil
}

// CodeToString converts a code to its canonical string, e.g. 1248 to "Fall 2024".
func (c *Codec) CodeToString(code int) (string, error) {
	if !c.IsValidCode(code) {
		return "", fmt.Errorf("%w: %d", ErrInvalidCode, code)
	}

	term, err := c.CodeToTerm(code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d", term, c.CodeToYear(code)), nil
}

// StringToCode converts the first "Term Year" pair in text to a code, e.g.
// "Spring 2024" to 1244. Term names are matched case-insensitively.
func (c *Codec) StringToCode(text string) (int, error) {
	m := c.pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidString, text)
	}

	def, ok := c.table.Lookup(m[1])
	if !ok {
		return 0, fmt.Errorf("%w: unknown term %q", ErrInvalidString, m[1])
	}

	// \d{4} always parses
	year, _ := strconv.Atoi(m[2])
	if year < ZeroYear {
		return 0, fmt.Errorf("%w: year %d is before %d", ErrInvalidString, year, ZeroYear)
	}

	return 10*(year-ZeroYear) + def.Digit, nil
}

// ShiftCode moves code forward by n semesters, or backward when n is negative.
// Results before the first term of ZeroYear or after LastYear fail with
// ErrOutOfRange.
//
// The terms of a year form a cycle of length TermsPerYear nested inside the
// decimal year encoding: the term index is advanced modulo TermsPerYear and
// the carry is added to the year. Both the modulo and the carry use floor
// semantics so that stepping back from the first term of a year lands in
// the last term of the previous year.
func (c *Codec) ShiftCode(code, n int) (int, error) {
	if !c.IsValidCode(code) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCode, code)
	}
	if c.CodeToYear(code) > LastYear {
		return 0, fmt.Errorf("%w: %d is after %d", ErrOutOfRange, code, LastYear)
	}
	if n > MaxShift || n < -MaxShift {
		return 0, fmt.Errorf("%w: shift of %d semesters exceeds %d", ErrOutOfRange, n, MaxShift)
	}

	digit := code % 10
	idx, _ := c.table.index(digit)

	shifted := idx + n
	newDigit := c.table.defs[floorMod(shifted, TermsPerYear)].Digit
	years := floorDiv(shifted, TermsPerYear)

	result := code + 10*years + (newDigit - digit)
	if result < 0 {
		return 0, fmt.Errorf("%w: %d shifted by %d semesters is before %s %d",
			ErrOutOfRange, code, n, c.table.defs[0].Name, ZeroYear)
	}
	if c.CodeToYear(result) > LastYear {
		return 0, fmt.Errorf("%w: %d shifted by %d semesters is after %d", ErrOutOfRange, code, n, LastYear)
	}
	return result, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// IsValidCode reports whether code is valid under the default term table.
func IsValidCode(code int) bool {
	return defaultCodec.IsValidCode(code)
}

// IsValidString reports whether text contains a semester under the default term table.
func IsValidString(text string) bool {
	return defaultCodec.IsValidString(text)
}

// CodeToYear returns the calendar year encoded in code.
func CodeToYear(code int) int {
	return defaultCodec.CodeToYear(code)
}

// CodeToTerm returns the default-table term encoded in code.
func CodeToTerm(code int) (Term, error) {
	return defaultCodec.CodeToTerm(code)
}

// CodeToTermName returns the default-table term name encoded in code.
func CodeToTermName(code int) (string, error) {
	return defaultCodec.CodeToTermName(code)
}

// CodeToString converts code using the default term table.
func CodeToString(code int) (string, error) {
	return defaultCodec.CodeToString(code)
}

// StringToCode converts text using the default term table.
func StringToCode(text string) (int, error) {
	return defaultCodec.StringToCode(text)
}
