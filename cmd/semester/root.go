package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/semester/internal/api"
	"github.com/phrazzld/semester/internal/config"
	"github.com/phrazzld/semester/internal/domain/semester"
	"github.com/phrazzld/semester/internal/platform/logger"
	"github.com/spf13/cobra"
)

// cli holds state shared by every subcommand. The config and calendar are
// built in the root command's PersistentPreRunE.
type cli struct {
	out    io.Writer
	logOut io.Writer

	// Calendar options injected ahead of the configured ones, used by tests
	calendarOpts []semester.Option

	configPath string
	logLevel   string
	asJSON     bool

	cfg      *config.Config
	logger   *slog.Logger
	calendar semester.Calendar
}

func newRootCmd(out, logOut io.Writer, opts ...semester.Option) *cobra.Command {
	c := &cli{out: out, logOut: logOut, calendarOpts: opts}

	root := &cobra.Command{
		Use:          "semester",
		Short:        "Convert, shift and derive academic semesters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}
	root.SetOut(out)
	root.SetErr(logOut)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a YAML config file (default: ./semester.yaml if present)")
	flags.StringVar(&c.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	flags.BoolVar(&c.asJSON, "json", false, "print semesters as JSON")

	root.AddCommand(
		c.newConvertCmd(),
		c.newShiftCmd(),
		c.newDerivedCmd("current", "Print the semester containing today", func(cal semester.Calendar) (semester.Semester, error) {
			return cal.Now()
		}),
		c.newDerivedCmd("next", "Print the semester after the current one", func(cal semester.Calendar) (semester.Semester, error) {
			return cal.Next()
		}),
		c.newDerivedCmd("previous", "Print the semester before the current one", func(cal semester.Calendar) (semester.Semester, error) {
			return cal.Previous()
		}),
		c.newRandomCmd(),
		c.newValidateCmd(),
		c.newServeCmd(),
	)

	return root
}

func (c *cli) init() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.logLevel != "" {
		c.cfg.Server.LogLevel = c.logLevel
	}

	c.logger, err = logger.SetupWithWriter(c.logOut, c.cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	params, err := c.cfg.Calendar.Params()
	if err != nil {
		return err
	}

	opts := append([]semester.Option{semester.WithLogger(c.logger)}, c.calendarOpts...)
	c.calendar, err = semester.NewCalendar(params, opts...)
	return err
}

// printSemester writes s as "code<TAB>string", or as JSON with --json.
func (c *cli) printSemester(s semester.Semester) error {
	if c.asJSON {
		return json.NewEncoder(c.out).Encode(api.NewSemesterResponse(s))
	}
	_, err := fmt.Fprintf(c.out, "%s\t%s\n", s.Code(), s.String())
	return err
}
