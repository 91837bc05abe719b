// Package controller provides output adapters for displaying normalization
// progress and results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "asciify.dev/pkg/asciify/internal/model"
)

// UI defines the interface for reporting traversal progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start prepares the UI for a traversal over total files.
	Start(ctx context.Context, total int) error

	// Close finalizes the UI after the traversal completed.
	Close(ctx context.Context)

	// DisplayFileResult reports the outcome for a single file.
	DisplayFileResult(ctx context.Context, result m.FileResult)

	// DisplayWarning reports a per-file failure that did not abort the run.
	DisplayWarning(ctx context.Context, path m.Path, err error)

	// DisplayDiff prints a unified diff of a would-be rewrite.
	DisplayDiff(ctx context.Context, diff string) error

	// DisplayList prints per-file replacement counts.
	DisplayList(ctx context.Context, results []m.FileResult) error

	// DisplaySummary prints the run counters after traversal.
	DisplaySummary(ctx context.Context, summary m.RunSummary) error
}

// IsTTY reports whether the given file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI selects the interactive TUI when stdout is a terminal and falls back
// to plain text output otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
