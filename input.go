package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A processFunc computes the output associated with one input line.
type processFunc func(line string) (string, error)

// normalize trims line and, if upper is true, converts it to uppercase.
func normalize(line string, upper bool) string {
	line = strings.TrimSpace(line)
	if upper {
		// Casers are stateful, they cannot be shared between goroutines.
		line = cases.Upper(language.Und).String(line)
	}
	return line
}

func writeResult(w io.Writer, res string) {
	if strings.HasSuffix(res, "\n") {
		fmt.Fprint(w, res)
	} else {
		fmt.Fprintln(w, res)
	}
}

// run applies process to each argument, or to each line of the standard input if there
// are no arguments.
// Arguments are processed concurrently, but their results are written in order.
func (a *app) run(cmd *cobra.Command, args []string, upper bool, process processFunc) error {
	if len(args) == 0 {
		return a.interactive(cmd, upper, process)
	}
	results := make([]string, len(args))
	errs := make([]error, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = process(normalize(arg, upper))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	nbErrs := 0
	for i, err := range errs {
		if err != nil {
			nbErrs++
			a.log.WithError(err).WithField("input", args[i]).Error("could not process input")
			continue
		}
		writeResult(cmd.OutOrStdout(), results[i])
	}
	if nbErrs != 0 {
		return errors.Errorf("%d of %d inputs could not be processed", nbErrs, len(args))
	}
	return nil
}

// interactive applies process to each line of the standard input.
// Errors are logged and do not stop the loop.
func (a *app) interactive(cmd *cobra.Command, upper bool, process processFunc) error {
	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, a.cfg.Prompt)
		if !sc.Scan() {
			break
		}
		line := normalize(sc.Text(), upper)
		res, err := process(line)
		if err != nil {
			a.log.WithError(err).WithField("input", line).Error("could not process input")
			continue
		}
		writeResult(out, res)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "could not read standard input")
	}
	return nil
}
