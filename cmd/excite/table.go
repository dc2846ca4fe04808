// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/internal/style"
)

var tableJSON bool

var tableCmd = &cobra.Command{
	Use:   "table <problem>",
	Short: "Print the excitation and state transition table",
	Long: `Print, for every row of the machine, the current state, the input, the
excitation of every flip-flop, the next state and the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Output in JSON format")
}

func runTable(cmd *cobra.Command, args []string) error {
	_, p, err := load(args[0])
	if err != nil {
		return err
	}
	tab, err := fsm.Build(p.Config, p.Terms)
	if err != nil {
		return err
	}
	if tableJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tab)
	}
	return writeTable(cmd.OutOrStdout(), tab)
}

func bitString(bs []int) string {
	var sb strings.Builder
	for _, b := range bs {
		sb.WriteByte('0' + byte(b))
	}
	return sb.String()
}

func writeTable(w io.Writer, tab *fsm.Table) error {
	c := tab.Config
	cols := []style.Column{
		{Name: "row", Align: style.AlignRight, Style: style.Dim},
		{Name: strings.Join(c.StateVars().Names(), "")},
		{Name: strings.Join(c.InputVars().Names(), "")},
	}
	for i := c.NumFlipFlops - 1; i >= 0; i-- {
		cols = append(cols, style.Column{Name: strings.Join(c.InputNames(i), ""), Style: style.Info})
	}
	cols = append(cols, style.Column{Name: "next"}, style.Column{Name: fsm.Output, Style: style.Bold})
	t := style.NewTable(cols...)
	for i := range tab.Rows {
		row := &tab.Rows[i]
		vals := []string{fmt.Sprint(row.Index), bitString(row.State), bitString(row.Input)}
		for _, ex := range row.Excitation {
			vals = append(vals, bitString(ex))
		}
		vals = append(vals, bitString(row.Next), fmt.Sprint(row.Output))
		t.AddRow(vals...)
	}
	fmt.Fprintf(w, "%s\n", style.Bold.Render(c.String()))
	_, err := io.WriteString(w, t.Render())
	return err
}
