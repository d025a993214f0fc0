package semester

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Semester is a single academic term of a given year. It holds both the
// integer code and the canonical string, which are always consistent with
// each other. Semesters are immutable values; arithmetic returns a new one.
//
// The zero Semester is not a semester: IsZero reports true for it and
// arithmetic on it fails with ErrInvalidSemester.
type Semester struct {
	code  int
	text  string
	codec *Codec
}

// Representation is the pair of forms a Semester can be written in.
type Representation struct {
	Code   string `json:"code"`
	String string `json:"string"`
}

// TermAndYear is a Semester's canonical string split into its two parts.
type TermAndYear struct {
	Term string `json:"term"`
	Year string `json:"year"`
}

// FromCode creates a Semester from an integer code such as 1248.
func FromCode(code int) (Semester, error) {
	return defaultCodec.FromCode(code)
}

// Parse creates a Semester from text such as "Fall 2024".
func Parse(text string) (Semester, error) {
	return defaultCodec.Parse(text)
}

// New creates a Semester from an integer code or a string. See Codec.New.
func New(v any) (Semester, error) {
	return defaultCodec.New(v)
}

// FromCode creates a Semester from a code valid under the codec's table.
func (c *Codec) FromCode(code int) (Semester, error) {
	text, err := c.CodeToString(code)
	if err != nil {
		return Semester{}, err
	}
	return Semester{code: code, text: text, codec: c}, nil
}

// Parse creates a Semester from the first "Term Year" pair in text. The
// Semester stores the canonical form, so Parse("fall 2024").String() is
// "Fall 2024".
func (c *Codec) Parse(text string) (Semester, error) {
	code, err := c.StringToCode(text)
	if err != nil {
		return Semester{}, err
	}
	return c.FromCode(code)
}

// New creates a Semester from a dynamically typed value. Integers of any
// width are treated as codes, as are strings holding a decimal integer;
// other strings are parsed as "Term Year". Any other kind of value fails with
// ErrInvalidConstructorInput.
func (c *Codec) New(v any) (Semester, error) {
	switch v := v.(type) {
	case int:
		return c.FromCode(v)
	case int8:
		return c.FromCode(int(v))
	case int16:
		return c.FromCode(int(v))
	case int32:
		return c.FromCode(int(v))
	case int64:
		return c.fromInt64(v)
	case uint:
		return c.fromUint64(uint64(v))
	case uint8:
		return c.FromCode(int(v))
	case uint16:
		return c.FromCode(int(v))
	case uint32:
		return c.fromUint64(uint64(v))
	case uint64:
		return c.fromUint64(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return c.FromCode(n)
		}
		return c.Parse(v)
	default:
		return Semester{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidConstructorInput, v)
	}
}

func (c *Codec) fromInt64(v int64) (Semester, error) {
	if v > math.MaxInt || v < math.MinInt {
		return Semester{}, fmt.Errorf("%w: %d", ErrInvalidCode, v)
	}
	return c.FromCode(int(v))
}

func (c *Codec) fromUint64(v uint64) (Semester, error) {
	if v > math.MaxInt {
		return Semester{}, fmt.Errorf("%w: %d", ErrInvalidCode, v)
	}
	return c.FromCode(int(v))
}

// IsZero reports whether s is the zero Semester.
func (s Semester) IsZero() bool {
	return s.codec == nil
}

// Get returns both representations of s.
func (s Semester) Get() Representation {
	return Representation{Code: s.Code(), String: s.String()}
}

// Code returns the code zero-padded to four digits, e.g. "0004" for Spring 1900.
func (s Semester) Code() string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d", s.code)
}

// Int returns the integer code.
func (s Semester) Int() int {
	return s.code
}

// String returns the canonical "Term Year" form.
func (s Semester) String() string {
	return s.text
}

// TermAndYear splits the canonical string on its separating space.
func (s Semester) TermAndYear() TermAndYear {
	term, year, _ := strings.Cut(s.text, " ")
	return TermAndYear{Term: term, Year: year}
}

// Term returns the term of s.
func (s Semester) Term() Term {
	if s.IsZero() {
		return ""
	}
	// a constructed Semester always holds a mapped digit
	term, _ := s.codec.CodeToTerm(s.code)
	return term
}

// Year returns the calendar year of s.
func (s Semester) Year() int {
	if s.IsZero() {
		return 0
	}
	return s.codec.CodeToYear(s.code)
}

// Equal reports whether s and other denote the same semester.
func (s Semester) Equal(other Semester) bool {
	return s.code == other.code && s.text == other.text
}

// Before reports whether s comes before other.
func (s Semester) Before(other Semester) bool {
	return s.code < other.code
}

// After reports whether s comes after other.
func (s Semester) After(other Semester) bool {
	return s.code > other.code
}

// AddSemesters returns s moved forward by n semesters, or backward when n is
// negative. Spring 2024 plus one is Summer 2024; Spring 2024 minus one is
// Fall 2023.
func (s Semester) AddSemesters(n int) (Semester, error) {
	if s.IsZero() {
		return Semester{}, ErrInvalidSemester
	}

	code, err := s.codec.ShiftCode(s.code, n)
	if err != nil {
		return Semester{}, err
	}
	return s.codec.FromCode(code)
}

// SubSemesters returns s moved backward by n semesters.
func (s Semester) SubSemesters(n int) (Semester, error) {
	return s.AddSemesters(-n)
}

// AddYears returns the same term n years later.
func (s Semester) AddYears(n int) (Semester, error) {
	if s.IsZero() {
		return Semester{}, ErrInvalidSemester
	}
	if n > MaxShift/TermsPerYear || n < -MaxShift/TermsPerYear {
		return Semester{}, fmt.Errorf("%w: shift of %d years exceeds %d", ErrOutOfRange, n, MaxShift/TermsPerYear)
	}
	return s.AddSemesters(TermsPerYear * n)
}

// Shift moves s by years and semesters combined into one shift, so an
// intermediate value outside the range does not fail the result.
func (s Semester) Shift(years, semesters int) (Semester, error) {
	if s.IsZero() {
		return Semester{}, ErrInvalidSemester
	}
	if years > MaxShift/TermsPerYear || years < -MaxShift/TermsPerYear ||
		semesters > MaxShift || semesters < -MaxShift {
		return Semester{}, fmt.Errorf("%w: shift of %d years and %d semesters", ErrOutOfRange, years, semesters)
	}
	return s.AddSemesters(TermsPerYear*years + semesters)
}

// SubYears returns the same term n years earlier.
func (s Semester) SubYears(n int) (Semester, error) {
	return s.AddYears(-n)
}

// SemestersUntil returns the number of semesters to add to s to reach other.
// It is negative when other comes first.
func (s Semester) SemestersUntil(other Semester) (int, error) {
	if s.IsZero() || other.IsZero() {
		return 0, ErrInvalidSemester
	}

	from, err := s.codec.ordinal(s.code)
	if err != nil {
		return 0, err
	}
	to, err := s.codec.ordinal(other.code)
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// ordinal numbers semesters consecutively from the first term of ZeroYear.
func (c *Codec) ordinal(code int) (int, error) {
	idx, ok := c.table.index(code % 10)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnmappedDigit, code%10)
	}
	return (code/10)*TermsPerYear + idx, nil
}

// MarshalText encodes s as its canonical string.
func (s Semester) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return nil, ErrInvalidSemester
	}
	return []byte(s.text), nil
}

// UnmarshalText decodes a code or a "Term Year" string. A zero Semester is
// decoded with the default term table; otherwise the table s was built with
// is kept.
func (s *Semester) UnmarshalText(text []byte) error {
	codec := s.codec
	if codec == nil {
		codec = defaultCodec
	}

	parsed, err := codec.New(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
