// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/excite/config"
	"github.com/go-air/excite/design"
)

var (
	logLevel string
	log      = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "excite",
	Short: "Excitation and output logic synthesis for finite state machines",
	Long: `excite reads a problem file giving a flip-flop configuration and a
minterm or maxterm set for every flip-flop input and the output Z, and
derives the excitation table, the canonical and minimized expressions and
bounded fan-in gate netlists.

Problem files are toml, yaml or json, chosen by extension; "-" reads toml
from standard input.

Examples:
  excite gen --flip-flop JK --counter -o jk.toml
  excite table jk.toml
  excite synth --path both jk.toml
  excite synth --format dot jk.toml | dot -Tsvg > jk.svg
  excite netlist "A'B + AB'C + D"
  excite check jk.toml
  excite aiger -o jk.aag jk.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "excite: %s\n", err)
		return 1
	}
	return 0
}

// load reads the problem file at path.
func load(path string) (*config.File, *design.Problem, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	p, err := f.Problem()
	if err != nil {
		return nil, nil, errors.Wrap(err, path)
	}
	return f, p, nil
}

// options gives the synthesis options of f overridden by the flags which
// were set.
func options(cmd *cobra.Command, f *config.File) (*design.Options, error) {
	o, err := f.Options()
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("path") {
		v, _ := fs.GetString("path")
		if o.Path, err = design.ParsePath(v); err != nil {
			return nil, err
		}
	}
	if fs.Changed("verify") {
		o.Verify, _ = fs.GetBool("verify")
	}
	if fs.Changed("workers") {
		o.Workers, _ = fs.GetInt("workers")
	}
	o.Log = log
	return &o, nil
}
