// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/go-air/excite/config"
	"github.com/go-air/excite/design"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/gen"
)

var (
	genSeed      int64
	genFlipFlop  string
	genFlipFlops int
	genInputs    int
	genMachine   string
	genCounter   bool
	genOut       string
	genFormat    string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a problem file",
	Long: `Generate a problem with random term sets, or with --counter the problem of
an up counter advancing by the input code whose output is set in the last
state.  Unset configuration flags are chosen at random.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
	fs := genCmd.Flags()
	fs.Int64Var(&genSeed, "seed", 1, "random seed")
	fs.StringVar(&genFlipFlop, "flip-flop", "", "flip-flop type (D, T, JK)")
	fs.IntVar(&genFlipFlops, "flip-flops", 0, "number of flip-flops (2, 3)")
	fs.IntVar(&genInputs, "inputs", 0, "number of inputs (1, 2)")
	fs.StringVar(&genMachine, "machine", "", "machine type (mealy, moore)")
	fs.BoolVar(&genCounter, "counter", false, "generate a counter")
	fs.StringVarP(&genOut, "output", "o", "-", "output file, format by extension")
	fs.StringVar(&genFormat, "format", "toml", "format when writing to standard output")
}

func runGen(cmd *cobra.Command, args []string) error {
	r := rand.New(rand.NewSource(genSeed))
	c := gen.Configr(r)
	if genFlipFlop != "" {
		ff, err := fsm.ParseFlipFlop(genFlipFlop)
		if err != nil {
			return err
		}
		c.FlipFlop = ff
	}
	if genFlipFlops != 0 {
		c.NumFlipFlops = genFlipFlops
	}
	if genInputs != 0 {
		c.NumInputs = genInputs
	}
	if genMachine != "" {
		m, err := fsm.ParseMachine(genMachine)
		if err != nil {
			return err
		}
		c.Machine = m
	}
	if err := c.Validate(); err != nil {
		return err
	}
	var p *design.Problem
	if genCounter {
		var err error
		if p, err = gen.Counter(c); err != nil {
			return err
		}
	} else {
		p = gen.Problemr(c, r)
	}
	f := config.FromProblem(p)
	log.WithField("config", c.String()).Info("generated")
	if genOut != "-" {
		return f.Save(genOut)
	}
	ft, err := config.ParseFormat(genFormat)
	if err != nil {
		return err
	}
	return f.Encode(cmd.OutOrStdout(), ft)
}
