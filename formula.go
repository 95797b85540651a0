package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/crillab/gopherbool/bf"
)

// A formulaCmd is a command processing formulas one at a time.
type formulaCmd struct {
	use     string
	short   string
	raw     bool // If true, formulas are not converted to uppercase
	process func(a *app, formula string) (string, error)
}

var formulaSpecs = []formulaCmd{
	{use: "eval", short: "Evaluate formulas made of constants only", raw: true, process: (*app).eval},
	{use: "table", short: "Print the truth table of formulas", process: (*app).table},
	{use: "nnf", short: "Print the negation normal form of formulas", process: (*app).nnf},
	{use: "cnf", short: "Print the conjunctive normal form of formulas", process: (*app).cnf},
	{use: "sat", short: "Tell whether formulas are satisfiable", process: (*app).sat},
	{use: "count", short: "Print the number of models of formulas", process: (*app).count},
	{use: "dimacs", short: "Print the DIMACS CNF version of formulas", process: (*app).dimacs},
}

func (a *app) formulaCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, len(formulaSpecs))
	for i, fc := range formulaSpecs {
		fc := fc
		cmds[i] = &cobra.Command{
			Use:   fc.use + " [formula...]",
			Short: fc.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, args, !fc.raw, func(formula string) (string, error) {
					return fc.process(a, formula)
				})
			},
		}
	}
	return cmds
}

func (a *app) parse(formula string) (bf.Expr, error) {
	e, err := bf.Parse(formula)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse formula")
	}
	a.log.WithField("formula", formula).Debug("formula parsed")
	return e, nil
}

// parseBounded parses the formula and checks its assignments can be enumerated.
func (a *app) parseBounded(formula string) (bf.Expr, error) {
	e, err := a.parse(formula)
	if err != nil {
		return nil, err
	}
	if nb := bf.FreeVars(e).Len(); nb > a.cfg.MaxVars {
		return nil, errors.Errorf("formula has %d variables, at most %d are allowed", nb, a.cfg.MaxVars)
	}
	return e, nil
}

func (a *app) marshal(v interface{}) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "could not marshal result")
	}
	return string(out), nil
}

func (a *app) eval(formula string) (string, error) {
	val, err := bf.Evaluate(formula)
	if err != nil {
		return "", errors.Wrap(err, "could not evaluate formula")
	}
	return strconv.FormatBool(val), nil
}

func (a *app) table(formula string) (string, error) {
	e, err := a.parseBounded(formula)
	if err != nil {
		return "", err
	}
	table := bf.TruthTable(e)
	if a.cfg.Output == outputYAML {
		return a.marshal(table)
	}
	var sb strings.Builder
	if _, err := table.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (a *app) nnf(formula string) (string, error) {
	e, err := a.parse(formula)
	if err != nil {
		return "", err
	}
	return bf.NNF(e).String(), nil
}

func (a *app) cnf(formula string) (string, error) {
	e, err := a.parse(formula)
	if err != nil {
		return "", err
	}
	return bf.CNF(e).String(), nil
}

type satResult struct {
	Satisfiable bool   `yaml:"satisfiable"`
	Model       string `yaml:"model,omitempty"`
}

func (a *app) sat(formula string) (string, error) {
	e, err := a.parseBounded(formula)
	if err != nil {
		return "", err
	}
	model, ok := bf.Model(e)
	if a.cfg.Output == outputYAML {
		res := satResult{Satisfiable: ok}
		if ok {
			res.Model = model.String()
		}
		return a.marshal(res)
	}
	return strconv.FormatBool(ok), nil
}

func (a *app) count(formula string) (string, error) {
	e, err := a.parseBounded(formula)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(bf.CountModels(e)), nil
}

func (a *app) dimacs(formula string) (string, error) {
	e, err := a.parse(formula)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := bf.Dimacs(e, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
