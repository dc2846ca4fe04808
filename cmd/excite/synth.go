// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/excite/design"
	"github.com/go-air/excite/internal/style"
	"github.com/go-air/excite/netlist"
)

var synthFormat string

var synthCmd = &cobra.Command{
	Use:   "synth <problem>",
	Short: "Synthesize expressions and netlists for every equation",
	Long: `Synthesize every flip-flop input and the output of a machine.

--path selects canonical expressions, minimized (prime implicant)
expressions or both.  --format text prints expressions and gates, json
prints the full result and dot prints one graphviz graph per netlist.

Failures are reported per equation; the exit code is non-zero if any
equation failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)
	addSynthFlags(synthCmd)
	synthCmd.Flags().StringVar(&synthFormat, "format", "text", "output format (text, json, dot)")
}

func addSynthFlags(cmd *cobra.Command) {
	cmd.Flags().String("path", "canonical", "expressions to synthesize (canonical, minimized, both)")
	cmd.Flags().Bool("verify", false, "check results with the SAT solver")
	cmd.Flags().Int("workers", 0, "equations synthesized at once, 0 for GOMAXPROCS")
}

func runSynth(cmd *cobra.Command, args []string) error {
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
	w := cmd.OutOrStdout()
	switch synthFormat {
	case "text":
		err = writeResult(w, res)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	case "dot":
		err = writeDots(w, res)
	default:
		return errors.Errorf("unknown format %q", synthFormat)
	}
	if err != nil {
		return err
	}
	if fs := res.Failed(); len(fs) > 0 {
		return errors.Errorf("%d of %d equations failed", len(fs), len(res.Equations))
	}
	return nil
}

func writeResult(w io.Writer, res *design.Result) error {
	t := style.NewTable(
		style.Column{Name: "eq", Style: style.Bold},
		style.Column{Name: "terms"},
		style.Column{Name: "path"},
		style.Column{Name: "expression", Style: style.Info},
		style.Column{Name: "gates", Align: style.AlignRight},
		style.Column{Name: "not/and/or", Align: style.AlignRight})
	for i := range res.Equations {
		eq := &res.Equations[i]
		if eq.Err != nil {
			t.AddRow(eq.Name, eq.Terms.String(), "", style.Error.Render(eq.Err.Error()))
			continue
		}
		for _, s := range []struct {
			path string
			syn  *design.Synthesis
		}{{"canonical", eq.Canonical}, {"minimized", eq.Minimized}} {
			if s.syn == nil {
				continue
			}
			gates, mix := "0", "-"
			if n := s.syn.Netlist; n != nil {
				gates = fmt.Sprint(n.Len())
				mix = fmt.Sprintf("%d/%d/%d", n.Count(netlist.NOT), n.Count(netlist.AND), n.Count(netlist.OR))
			}
			t.AddRow(eq.Name, eq.Terms.String(), s.path, s.syn.Expr.String(), gates, mix)
		}
	}
	if _, err := io.WriteString(w, t.Render()); err != nil {
		return err
	}
	for i := range res.Equations {
		eq := &res.Equations[i]
		s := eq.Synthesis(res.Path)
		if s == nil || s.Netlist == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s = %s\n", style.Bold.Render(eq.Name), s.Expr)
		for j := range s.Netlist.Gates {
			fmt.Fprintf(w, "  %s\n", &s.Netlist.Gates[j])
		}
	}
	return nil
}

func writeDots(w io.Writer, res *design.Result) error {
	for i := range res.Equations {
		eq := &res.Equations[i]
		s := eq.Synthesis(res.Path)
		if s == nil || s.Netlist == nil {
			continue
		}
		if err := s.Netlist.WriteDot(w, eq.Name); err != nil {
			return err
		}
	}
	return nil
}
