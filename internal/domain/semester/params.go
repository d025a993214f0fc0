package semester

import "fmt"

// Defaults for the random year range.
const (
	DefaultMinRandomYear = ZeroYear
	DefaultMaxRandomYear = 2899
)

// LastYear is the last year whose canonical string has a 4-digit year.
const LastYear = 9999

// Params defines all configurable parameters of a Calendar.
type Params struct {
	// Term table used for encoding and for deriving the current term
	Terms TermTable

	// Year range used by RandomDefault
	MinRandomYear int
	MaxRandomYear int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	Terms []TermDef

	MinRandomYear int
	MaxRandomYear int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		Terms:         DefaultTermTable(),
		MinRandomYear: DefaultMinRandomYear,
		MaxRandomYear: DefaultMaxRandomYear,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	if len(config.Terms) > 0 {
		table, err := NewTermTable(config.Terms...)
		if err != nil {
			return nil, err
		}
		params.Terms = table
	}

	if config.MinRandomYear != 0 {
		params.MinRandomYear = config.MinRandomYear
	}
	if config.MaxRandomYear != 0 {
		params.MaxRandomYear = config.MaxRandomYear
	}

	if err := validateYearRange(params.MinRandomYear, params.MaxRandomYear); err != nil {
		return nil, err
	}
	return params, nil
}

func validateYearRange(minYear, maxYear int) error {
	if minYear < ZeroYear {
		return fmt.Errorf("%w: minimum year %d is before %d", ErrInvalidYearRange, minYear, ZeroYear)
	}
	if maxYear > LastYear {
		return fmt.Errorf("%w: maximum year %d is after %d", ErrInvalidYearRange, maxYear, LastYear)
	}
	if minYear > maxYear {
		return fmt.Errorf("%w: minimum year %d is after maximum year %d", ErrInvalidYearRange, minYear, maxYear)
	}
	return nil
}
