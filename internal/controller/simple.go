package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "asciify.dev/pkg/asciify/internal/model"
)

// SimpleUI implements UI using the cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayFileResult prints a line for every rewritten file. Unchanged files
// stay quiet so large trees do not drown the summary.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !result.Changed {
		return
	}

	s.printf("rewrote %s (%s, %d replacement(s))\n", result.Path, result.Encoding, result.Replacements)
}

// DisplayWarning reports a per-file failure.
func (s *SimpleUI) DisplayWarning(ctx context.Context, path m.Path, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("warning: skipping %s: %v\n", path, err)
}

// DisplayDiff prints a unified diff of a would-be rewrite.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", diff)

	return nil
}

// DisplayList renders per-file replacement counts as a table.
func (s *SimpleUI) DisplayList(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]m.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	totalReplacements := 0

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Encoding", "Replacements"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, result := range sorted {
		table.Append([]string{
			string(result.Path),
			string(result.Encoding),
			fmt.Sprintf("%d", result.Replacements),
		})

		totalReplacements += result.Replacements
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		"",
		fmt.Sprintf("%d", totalReplacements),
	})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySummary prints the run counters after traversal.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\nExamined %d file(s), changed %d, replaced %d character(s)\n",
		summary.Examined, summary.Changed, summary.Replaced)

	if summary.Skipped > 0 {
		s.printf("Skipped %d file(s) due to errors, see the log for details\n", summary.Skipped)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
