// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/excite/netlist"
)

var netlistFormat string

var netlistCmd = &cobra.Command{
	Use:   "netlist <expression>",
	Short: "Synthesize a single expression",
	Long: `Synthesize a sum of products such as "A'B + AB'C" or a product of sums
such as "(A+B')(A'+C)" into a netlist of NOT gates and AND/OR gates with at
most 3 inputs.`,
	Args: cobra.ExactArgs(1),
	RunE: runNetlist,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.Flags().StringVar(&netlistFormat, "format", "text", "output format (text, json, dot)")
}

func runNetlist(cmd *cobra.Command, args []string) error {
	n, err := netlist.Synth(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch netlistFormat {
	case "text":
		for i := range n.Gates {
			fmt.Fprintln(w, &n.Gates[i])
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	case "dot":
		return n.WriteDot(w, "netlist")
	}
	return errors.Errorf("unknown format %q", netlistFormat)
}
