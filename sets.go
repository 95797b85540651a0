package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherbool/set"
)

// contPrompt is displayed when reading the sets of a formula from the standard input.
const contPrompt = ".. "

func parseSets(lines []string) ([]set.Set[int], error) {
	sets := make([]set.Set[int], len(lines))
	for i, line := range lines {
		s, err := set.ParseInts(line)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid set %q", line)
		}
		sets[i] = s
	}
	return sets, nil
}

func (a *app) formatSet(s set.Set[int]) (string, error) {
	if a.cfg.Output == outputYAML {
		return a.marshal(s.Elems())
	}
	return s.String(), nil
}

func (a *app) evalSet(formula string, sets []set.Set[int]) (string, error) {
	res, err := set.Evaluate(formula, sets)
	if err != nil {
		return "", errors.Wrap(err, "could not evaluate set formula")
	}
	a.log.WithField("formula", formula).WithField("sets", len(sets)).Debug("set formula evaluated")
	return a.formatSet(res)
}

func (a *app) setCmd() *cobra.Command {
	var rawSets []string
	cmd := &cobra.Command{
		Use:   "set [formula]",
		Short: "Evaluate a formula over sets of integers",
		Long: `Evaluate a formula over sets of integers. The first --set flag gives the
value of A, the second one the value of B, and so on.

        $ gopherbool set 'AB&' --set '1 2 3' --set '2 3 4'
        { 2, 3 }

Without a formula, formulas are read from the standard input, each one followed by
its sets, one per line, and an empty line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.setInteractive(cmd)
			}
			sets, err := parseSets(rawSets)
			if err != nil {
				return err
			}
			res, err := a.evalSet(normalize(args[0], true), sets)
			if err != nil {
				return err
			}
			writeResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&rawSets, "set", "s", nil, "whitespace-separated elements of a set, repeated for each variable")
	return cmd
}

func (a *app) setInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, a.cfg.Prompt)
		if !sc.Scan() {
			break
		}
		formula := normalize(sc.Text(), true)
		var lines []string
		for {
			fmt.Fprint(out, contPrompt)
			if !sc.Scan() || strings.TrimSpace(sc.Text()) == "" {
				break
			}
			lines = append(lines, sc.Text())
		}
		sets, err := parseSets(lines)
		if err == nil {
			var res string
			if res, err = a.evalSet(formula, sets); err == nil {
				writeResult(out, res)
			}
		}
		if err != nil {
			a.log.WithError(err).WithField("input", formula).Error("could not process input")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "could not read standard input")
	}
	return nil
}

func (a *app) powerset(line string) (string, error) {
	s, err := set.ParseInts(line)
	if err != nil {
		return "", errors.Wrap(err, "invalid set")
	}
	subsets := s.Powerset()
	if a.cfg.Output == outputYAML {
		elems := make([][]int, len(subsets))
		for i, sub := range subsets {
			elems[i] = sub.Elems()
		}
		return a.marshal(elems)
	}
	strs := make([]string, len(subsets))
	for i, sub := range subsets {
		strs[i] = sub.String()
	}
	return strings.Join(strs, "\n"), nil
}

func (a *app) powersetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "powerset [element...]",
		Short: "Print all subsets of a set of integers",
		Long: `Print all subsets of the set made of the given integers.
Without arguments, sets are read from the standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.interactive(cmd, false, a.powerset)
			}
			res, err := a.powerset(strings.Join(args, " "))
			if err != nil {
				return err
			}
			writeResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
