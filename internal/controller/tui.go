package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "asciify.dev/pkg/asciify/internal/model"
)

var (
	tuiTitleStyle   = lipgloss.NewStyle().Bold(true)
	tuiPathStyle    = lipgloss.NewStyle().Faint(true)
	tuiChangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tuiWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI using Bubble Tea for interactive progress display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background. Display calls feed
// it through the Bubble Tea message queue, which makes them safe to invoke
// from parallel workers.
func (t *TUI) Start(ctx context.Context, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(newRunModel(total), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		_, _ = t.program.Run()
		close(t.done)
	}()

	return nil
}

// Close stops the progress program and waits for its final frame.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Send(runFinishedMsg{})
	<-t.done
	t.program = nil
}

// DisplayFileResult reports the outcome for a single file.
func (t *TUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(fileDoneMsg{result: result})
}

// DisplayWarning reports a per-file failure.
func (t *TUI) DisplayWarning(ctx context.Context, path m.Path, err error) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(fileWarnMsg{path: path, err: err})
}

// DisplayDiff prints a unified diff. Diffs are line oriented, so they bypass
// the progress program and go straight to the output stream.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(t.output, diff)

	return err
}

// DisplayList prints per-file replacement counts.
func (t *TUI) DisplayList(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, result := range results {
		line := fmt.Sprintf("%s  %s  %d replacement(s)\n",
			tuiPathStyle.Render(string(result.Path)), result.Encoding, result.Replacements)

		if _, err := fmt.Fprint(t.output, line); err != nil {
			return err
		}
	}

	return nil
}

// DisplaySummary prints the run counters after the progress program closed.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := fmt.Sprintf("%s %d file(s) examined, %s changed, %d character(s) replaced\n",
		tuiTitleStyle.Render("Done:"),
		summary.Examined,
		tuiChangedStyle.Render(fmt.Sprintf("%d", summary.Changed)),
		summary.Replaced,
	)

	if summary.Skipped > 0 {
		line += tuiWarnStyle.Render(fmt.Sprintf("%d file(s) skipped due to errors", summary.Skipped)) + "\n"
	}

	_, err := fmt.Fprint(t.output, line)

	return err
}

type fileDoneMsg struct {
	result m.FileResult
}

type fileWarnMsg struct {
	path m.Path
	err  error
}

type runFinishedMsg struct{}

// runModel is the Bubble Tea model for the traversal progress view.
type runModel struct {
	total    int
	examined int
	changed  int
	lastPath m.Path
	warnings []string
	bar      progress.Model
	quitting bool
}

func newRunModel(total int) runModel {
	return runModel{
		total: total,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.bar.Width = msg.Width - 4

		return rm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			rm.quitting = true

			return rm, tea.Quit
		}

		return rm, nil

	case fileDoneMsg:
		rm.examined++
		rm.lastPath = msg.result.Path

		if msg.result.Changed {
			rm.changed++
		}

		return rm, nil

	case fileWarnMsg:
		rm.warnings = append(rm.warnings, fmt.Sprintf("skipping %s: %v", msg.path, msg.err))

		return rm, nil

	case runFinishedMsg:
		rm.quitting = true

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("asciify") + "\n\n")

	ratio := 0.0
	if rm.total > 0 {
		ratio = float64(rm.examined) / float64(rm.total)
	}

	b.WriteString(rm.bar.ViewAs(ratio) + "\n")
	fmt.Fprintf(&b, "%d/%d files, %d changed\n", rm.examined, rm.total, rm.changed)

	if rm.lastPath != "" {
		b.WriteString(tuiPathStyle.Render(string(rm.lastPath)) + "\n")
	}

	for _, warning := range rm.warnings {
		b.WriteString(tuiWarnStyle.Render(warning) + "\n")
	}

	if rm.quitting {
		b.WriteString("\n")
	}

	return b.String()
}
