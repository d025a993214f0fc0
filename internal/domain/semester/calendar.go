package semester

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the system time.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// RandomSource supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// globalRandom uses the goroutine-safe top-level math/rand/v2 functions.
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Calendar derives semesters from a clock and a random source.
type Calendar interface {
	// Codec returns the codec built from the calendar's term table
	Codec() *Codec

	// TermForDay returns the term current on a day of the year
	TermForDay(day int) Term

	// At returns the semester containing t
	At(t time.Time) (Semester, error)

	// Now returns the current semester
	Now() (Semester, error)

	// Next returns the semester after the current one
	Next() (Semester, error)

	// Previous returns the semester before the current one
	Previous() (Semester, error)

	// Random returns a semester with a uniformly chosen term, not among
	// exclude, and a uniformly chosen year in [minYear, maxYear]
	Random(minYear, maxYear int, exclude ...Term) (Semester, error)

	// RandomDefault is Random over the configured year range
	RandomDefault(exclude ...Term) (Semester, error)

	// RandomYears returns the configured year range used by RandomDefault
	RandomYears() (minYear, maxYear int)
}

// Option configures a Calendar.
type Option func(*defaultCalendar)

// WithClock sets the clock used by Now, Next and Previous.
func WithClock(clock Clock) Option {
	return func(c *defaultCalendar) {
		c.clock = clock
	}
}

// WithRandomSource sets the source used by Random.
func WithRandomSource(src RandomSource) Option {
	return func(c *defaultCalendar) {
		c.random = src
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *defaultCalendar) {
		c.logger = logger
	}
}

// defaultCalendar is the standard implementation of the Calendar interface
type defaultCalendar struct {
	params *Params
	codec  *Codec
	clock  Clock
	random RandomSource
	logger *slog.Logger
}

// NewDefaultCalendar creates a Calendar with default parameters.
func NewDefaultCalendar(opts ...Option) Calendar {
	c := &defaultCalendar{
		params: NewDefaultParams(),
		codec:  defaultCodec,
	}
	c.apply(opts)
	return c
}

// NewCalendar creates a Calendar with custom parameters.
func NewCalendar(params *Params, opts ...Option) (Calendar, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: nil params", ErrInvalidTermTable)
	}

	codec, err := NewCodec(params.Terms)
	if err != nil {
		return nil, err
	}
	if err := validateYearRange(params.MinRandomYear, params.MaxRandomYear); err != nil {
		return nil, err
	}

	c := &defaultCalendar{
		params: params,
		codec:  codec,
	}
	c.apply(opts)
	return c, nil
}

func (c *defaultCalendar) apply(opts []Option) {
	c.clock = SystemClock{}
	c.random = globalRandom{}
	c.logger = slog.Default()
	for _, opt := range opts {
		opt(c)
	}
}

// Codec implements the Calendar interface.
func (c *defaultCalendar) Codec() *Codec {
	return c.codec
}

// TermForDay implements the Calendar interface.
func (c *defaultCalendar) TermForDay(day int) Term {
	return c.codec.table.TermForDay(day)
}

// At implements the Calendar interface.
func (c *defaultCalendar) At(t time.Time) (Semester, error) {
	term := c.TermForDay(t.YearDay())
	s, err := c.build(term, t.Year())
	if err != nil {
		return Semester{}, err
	}

	c.logger.Debug("derived semester from date",
		slog.String("date", t.Format(time.DateOnly)),
		slog.Int("day_of_year", t.YearDay()),
		slog.String("semester", s.String()))
	return s, nil
}

// Now implements the Calendar interface.
func (c *defaultCalendar) Now() (Semester, error) {
	return c.At(c.clock.Now())
}

// Next implements the Calendar interface.
func (c *defaultCalendar) Next() (Semester, error) {
	now, err := c.Now()
	if err != nil {
		return Semester{}, err
	}
	return now.AddSemesters(1)
}

// Previous implements the Calendar interface.
func (c *defaultCalendar) Previous() (Semester, error) {
	now, err := c.Now()
	if err != nil {
		return Semester{}, err
	}
	return now.AddSemesters(-1)
}

// Random implements the Calendar interface.
func (c *defaultCalendar) Random(minYear, maxYear int, exclude ...Term) (Semester, error) {
	if err := validateYearRange(minYear, maxYear); err != nil {
		return Semester{}, err
	}

	allowed := make([]Term, 0, TermsPerYear)
	for _, term := range c.codec.table.Terms() {
		if !containsTerm(exclude, term) {
			allowed = append(allowed, term)
		}
	}
	if len(allowed) == 0 {
		return Semester{}, fmt.Errorf("%w: all of %v excluded", ErrNoTermsAvailable, c.codec.table.Terms())
	}

	term := allowed[c.random.IntN(len(allowed))]
	year := minYear + c.random.IntN(maxYear-minYear+1)
	return c.build(term, year)
}

// RandomDefault implements the Calendar interface.
func (c *defaultCalendar) RandomDefault(exclude ...Term) (Semester, error) {
	return c.Random(c.params.MinRandomYear, c.params.MaxRandomYear, exclude...)
}

// RandomYears implements the Calendar interface.
func (c *defaultCalendar) RandomYears() (int, int) {
	return c.params.MinRandomYear, c.params.MaxRandomYear
}

// build creates the Semester for a term of the table and a calendar year.
func (c *defaultCalendar) build(term Term, year int) (Semester, error) {
	if year < ZeroYear || year > LastYear {
		return Semester{}, fmt.Errorf("%w: year %d is outside %d..%d", ErrOutOfRange, year, ZeroYear, LastYear)
	}

	digit, ok := c.codec.table.Digit(term)
	if !ok {
		return Semester{}, fmt.Errorf("%w: unknown term %q", ErrInvalidString, term)
	}
	return c.codec.FromCode(10*(year-ZeroYear) + digit)
}

func containsTerm(terms []Term, term Term) bool {
	for _, t := range terms {
		if strings.EqualFold(string(t), string(term)) {
			return true
		}
	}
	return false
}
