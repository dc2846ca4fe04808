// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package style provides terminal styling for excite output using lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Success renders verified results.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)

	// Error renders failed equations.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Bold(true)

	// Info renders expressions.
	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("4"))

	// Dim renders secondary information such as don't care bits.
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	// Bold renders headings.
	Bold = lipgloss.NewStyle().
		Bold(true)
)
