// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/excite/design"
	"github.com/go-air/excite/internal/style"
)

var checkCmd = &cobra.Command{
	Use:   "check <problem>",
	Short: "Verify synthesized netlists with the SAT solver",
	Long: `Synthesize both canonical and minimized netlists and prove, with a miter
for every equation and a step check of the sequential circuit for every
row, that they realise the term sets of the problem.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, p, err := load(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, path := range []design.Path{design.Canonical, design.Minimized} {
		res, err := design.Run(cmd.Context(), p, &design.Options{Path: path, Verify: true, Log: log})
		if err != nil {
			return errors.Wrap(err, path.String())
		}
		if fs := res.Failed(); len(fs) > 0 {
			for _, eq := range fs {
				fmt.Fprintf(w, "%s %s %s: %s\n", style.Error.Render("FAIL"), path, eq.Name, eq.Err)
			}
			return errors.Errorf("%s: %d equations failed", path, len(fs))
		}
		fmt.Fprintf(w, "%s %s: %d equations, %d gates, %d rows\n",
			style.Success.Render("ok"), path, len(res.Equations), res.Gates(path), len(res.Table.Rows))
	}
	return nil
}
