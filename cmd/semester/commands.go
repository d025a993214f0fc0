package main

import (
	"fmt"
	"strconv"

	"github.com/phrazzld/semester/internal/domain/semester"
	"github.com/phrazzld/semester/internal/server"
	"github.com/spf13/cobra"
)

func (c *cli) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <code|\"Term Year\">",
		Short: "Convert a code to its string form or a string to its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.calendar.Codec().New(args[0])
			if err != nil {
				return err
			}
			return c.printSemester(s)
		},
	}
}

func (c *cli) newShiftCmd() *cobra.Command {
	var semesters, years int

	cmd := &cobra.Command{
		Use:   "shift <code|\"Term Year\">",
		Short: "Move a semester forward or backward",
		Long:  "Move a semester by --semesters terms and --years years. Negative values move backward.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.calendar.Codec().New(args[0])
			if err != nil {
				return err
			}
			if s, err = s.Shift(years, semesters); err != nil {
				return err
			}
			return c.printSemester(s)
		},
	}

	cmd.Flags().IntVar(&semesters, "semesters", 0, "number of semesters to add")
	cmd.Flags().IntVar(&years, "years", 0, "number of years to add")
	return cmd
}

func (c *cli) newDerivedCmd(
	use, short string,
	derive func(semester.Calendar) (semester.Semester, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := derive(c.calendar)
			if err != nil {
				return err
			}
			return c.printSemester(s)
		},
	}
}

func (c *cli) newRandomCmd() *cobra.Command {
	var minYear, maxYear int
	var exclude []string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random semester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defMin, defMax := c.calendar.RandomYears()
			if !cmd.Flags().Changed("min-year") {
				minYear = defMin
			}
			if !cmd.Flags().Changed("max-year") {
				maxYear = defMax
			}

			terms := make([]semester.Term, 0, len(exclude))
			for _, name := range exclude {
				terms = append(terms, semester.Term(name))
			}

			s, err := c.calendar.Random(minYear, maxYear, terms...)
			if err != nil {
				return err
			}
			return c.printSemester(s)
		},
	}

	cmd.Flags().IntVar(&minYear, "min-year", semester.DefaultMinRandomYear, "first year to draw from")
	cmd.Flags().IntVar(&maxYear, "max-year", semester.DefaultMaxRandomYear, "last year to draw from")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "terms to leave out (repeatable)")
	return cmd
}

func (c *cli) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code|\"Term Year\">",
		Short: "Report whether a code or string is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := c.calendar.Codec()

			var valid bool
			if code, err := strconv.Atoi(args[0]); err == nil {
				valid = codec.IsValidCode(code)
			} else {
				valid = codec.IsValidString(args[0])
			}

			_, err := fmt.Fprintln(c.out, valid)
			return err
		},
	}
}

func (c *cli) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.New(c.cfg, c.logger, c.calendarOpts...)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}
