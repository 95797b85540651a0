package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherbool/arith"
	"github.com/crillab/gopherbool/curve"
)

func parseUints(args []string, bitSize int) ([]uint64, error) {
	vals := make([]uint64, len(args))
	for i, arg := range args {
		val, err := strconv.ParseUint(arg, 10, bitSize)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", arg)
		}
		vals[i] = val
	}
	return vals, nil
}

// foldCmd returns a command combining its arguments with op, starting from init.
func (a *app) foldCmd(use, short string, init uint32, op func(x, y uint32) uint32) *cobra.Command {
	return &cobra.Command{
		Use:   use + " number...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseUints(args, 32)
			if err != nil {
				return err
			}
			res := init
			for _, val := range vals {
				res = op(res, uint32(val))
			}
			a.log.WithField("operands", len(vals)).Debugf("%s done", use)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) adderCmd() *cobra.Command {
	return a.foldCmd("adder", "Add numbers with bitwise operations only", 0, arith.Adder)
}

func (a *app) multiplierCmd() *cobra.Command {
	return a.foldCmd("multiplier", "Multiply numbers with bitwise operations only", 1, arith.Multiplier)
}

func (a *app) grayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gray number...",
		Short: "Print the gray code of numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseUints(args, 32)
			if err != nil {
				return err
			}
			for _, val := range vals {
				fmt.Fprintf(cmd.OutOrStdout(), "%8b -> %8b\n", val, arith.GrayCode(uint32(val)))
			}
			return nil
		},
	}
}

func (a *app) mapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map x y",
		Short: "Map 16-bit coordinates onto [0, 1] along a Z-order curve",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseUints(args, 16)
			if err != nil {
				return err
			}
			n := curve.Map(uint16(vals[0]), uint16(vals[1]))
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(n, 'g', -1, 64))
			return nil
		},
	}
}

func (a *app) reverseMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse-map n",
		Short: "Find the coordinates a number of [0, 1] was mapped from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[0], 64)
			if err != nil || n < 0 || n > 1 {
				return errors.Errorf("invalid value %q, expected a number between 0 and 1", args[0])
			}
			x, y := curve.ReverseMap(n)
			fmt.Fprintf(cmd.OutOrStdout(), "x = %d, y = %d\n", x, y)
			return nil
		},
	}
}
