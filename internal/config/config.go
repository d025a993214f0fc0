package config

import (
	"github.com/phrazzld/semester/internal/domain/semester"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Calendar CalendarConfig `mapstructure:"calendar" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Time allowed for in-flight requests on shutdown
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// CalendarConfig contains the term table and the defaults for random semesters.
// An empty term list selects the built-in Spring/Summer/Fall table.
type CalendarConfig struct {
	Terms         []TermConfig `mapstructure:"terms" validate:"omitempty,len=3,dive"`
	RandomMinYear int          `mapstructure:"random_min_year" validate:"gte=1900,lte=9999"`
	RandomMaxYear int          `mapstructure:"random_max_year" validate:"gte=1900,lte=9999,gtefield=RandomMinYear"`
}

// TermConfig is one row of the term table.
type TermConfig struct {
	Name     string `mapstructure:"name" validate:"required,alpha"`
	Digit    int    `mapstructure:"digit" validate:"gte=0,lte=8"`
	StartDay int    `mapstructure:"start_day" validate:"required,gte=1,lte=366"`
}

// Params converts the calendar settings into semester parameters. Structural
// rules the validator cannot express, such as increasing digits, are checked
// by the semester package.
func (c CalendarConfig) Params() (*semester.Params, error) {
	terms := make([]semester.TermDef, 0, len(c.Terms))
	for _, t := range c.Terms {
		terms = append(terms, semester.TermDef{
			Name:     semester.Term(t.Name),
			Digit:    t.Digit,
			StartDay: t.StartDay,
		})
	}

	return semester.NewParams(semester.ParamsConfig{
		Terms:         terms,
		MinRandomYear: c.RandomMinYear,
		MaxRandomYear: c.RandomMaxYear,
	})
}
