package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

// app is the state shared by all commands.
type app struct {
	cfg   config
	debug bool
	log   *logrus.Logger
}

func newRootCmd(cfg config) *cobra.Command {
	a := &app{cfg: cfg}
	cmd := &cobra.Command{
		Use:   "gopherbool",
		Short: "Evaluate, normalize and solve postfix propositional formulas",
		Long: `gopherbool reads propositional formulas written in postfix notation,
such as "AB&C|!" for !((A & B) | C), and evaluates, tabulates or normalizes them.

Formulas are given as arguments, or read line by line from the standard input
when no argument is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	a.cfg.addFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "use debug log level")

	cmd.AddCommand(a.formulaCmds()...)
	cmd.AddCommand(
		a.setCmd(),
		a.powersetCmd(),
		a.adderCmd(),
		a.multiplierCmd(),
		a.grayCmd(),
		a.mapCmd(),
		a.reverseMapCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.cfg.validate(); err != nil {
		return err
	}
	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	level, _ := logrus.ParseLevel(a.cfg.LogLevel)
	if a.debug {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)
	a.log.Debugf("log level %s", a.log.Level)
	return nil
}
