// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-air/excite/design"
)

var (
	aigerOut    string
	aigerBinary bool
)

var aigerCmd = &cobra.Command{
	Use:   "aiger <problem>",
	Short: "Export the synthesized machine in Aiger format",
	Long: `Synthesize the machine and write its sequential circuit, one latch per
flip-flop initialised to 0, in Aiger 1.9 format.  Output files ending in
.aig are written in binary unless --binary=false.`,
	Args: cobra.ExactArgs(1),
	RunE: runAiger,
}

func init() {
	rootCmd.AddCommand(aigerCmd)
	addSynthFlags(aigerCmd)
	aigerCmd.Flags().StringVarP(&aigerOut, "output", "o", "-", "output file")
	aigerCmd.Flags().BoolVar(&aigerBinary, "binary", false, "write binary aiger")
}

func runAiger(cmd *cobra.Command, args []string) error {
	f, p, err := load(args[0])
	if err != nil {
		return err
	}
	o, err := options(cmd, f)
	if err != nil {
		return err
	}
	res, err := design.Run(cmd.Context(), p, o)
	if err != nil {
		return err
	}
	m, err := res.Machine(o.Path)
	if err != nil {
		return err
	}
	bin := aigerBinary
	if !cmd.Flags().Changed("binary") && len(aigerOut) > 4 && aigerOut[len(aigerOut)-4:] == ".aig" {
		bin = true
	}
	var buf bytes.Buffer
	if err := m.WriteAiger(&buf, bin); err != nil {
		return err
	}
	if aigerOut == "-" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	return os.WriteFile(aigerOut, buf.Bytes(), 0644)
}
