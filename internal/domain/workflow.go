package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"asciify.dev/pkg/asciify/internal/adapter"
	"asciify.dev/pkg/asciify/internal/controller"
	m "asciify.dev/pkg/asciify/internal/model"
)

// DefaultExtensions lists the C-family source and header suffixes scanned
// when the user does not override the extension list.
var DefaultExtensions = []string{
	".c", ".h", ".cc", ".cpp", ".cxx", ".hh", ".hpp", ".hxx", ".inl", ".ipp",
}

// diffContextLines is the number of unchanged lines shown around each hunk.
const diffContextLines = 3

// RunArgs contains the arguments shared by the run, list, and diff operations.
type RunArgs struct {
	Paths      []m.Path
	Extensions []string
	Exclude    []string
	Parallel   int
	DryRun     bool
}

// Workflow orchestrates traversal and per-file normalization.
type Workflow interface {
	// Run normalizes every matching file under the given roots and returns
	// the aggregated counters. A single file's failure never aborts the run.
	Run(ctx context.Context, args RunArgs) (m.RunSummary, error)

	// List reports per-file replacement counts without writing anything.
	List(ctx context.Context, args RunArgs) error

	// Diff prints a unified diff of every would-be rewrite without writing.
	Diff(ctx context.Context, args RunArgs) error
}

type workflow struct {
	fs         adapter.SourceFSAdapter
	normalizer Normalizer
	ui         controller.UI
}

// NewWorkflow creates a Workflow wired to the given adapters and UI.
func NewWorkflow(fs adapter.SourceFSAdapter, normalizer Normalizer, ui controller.UI) Workflow {
	return &workflow{fs: fs, normalizer: normalizer, ui: ui}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.RunSummary, error) {
	files, err := w.collect(args)
	if err != nil {
		return m.RunSummary{}, err
	}

	if err := w.ui.Start(ctx, len(files)); err != nil {
		return m.RunSummary{}, err
	}

	results := make([]m.FileResult, len(files))

	var uiMutex sync.Mutex

	var group errgroup.Group
	group.SetLimit(workerLimit(args.Parallel))

	for i, path := range files {
		index := i
		currentPath := path

		group.Go(func() error {
			result, err := w.normalizer.Normalize(currentPath, args.DryRun)
			if err != nil {
				slog.Warn("skipping file", "path", currentPath, "error", err)

				result.Skipped = true

				uiMutex.Lock()
				w.ui.DisplayWarning(ctx, currentPath, err)
				uiMutex.Unlock()
			}

			results[index] = result

			uiMutex.Lock()
			w.ui.DisplayFileResult(ctx, result)
			uiMutex.Unlock()

			return nil
		})
	}

	// Per-file failures are absorbed above, so Wait only synchronizes.
	_ = group.Wait()

	w.ui.Close(ctx)

	summary := m.RunSummary{}
	for _, result := range results {
		summary.Add(result)
	}

	return summary, w.ui.DisplaySummary(ctx, summary)
}

func (w *workflow) List(ctx context.Context, args RunArgs) error {
	files, err := w.collect(args)
	if err != nil {
		return err
	}

	results := make([]m.FileResult, 0, len(files))

	for _, path := range files {
		preview, err := w.normalizer.Preview(path)
		if err != nil {
			slog.Warn("skipping file", "path", path, "error", err)
			w.ui.DisplayWarning(ctx, path, err)

			continue
		}

		results = append(results, preview.Result)
	}

	return w.ui.DisplayList(ctx, results)
}

func (w *workflow) Diff(ctx context.Context, args RunArgs) error {
	files, err := w.collect(args)
	if err != nil {
		return err
	}

	for _, path := range files {
		preview, err := w.normalizer.Preview(path)
		if err != nil {
			slog.Warn("skipping file", "path", path, "error", err)
			w.ui.DisplayWarning(ctx, path, err)

			continue
		}

		if !preview.Result.Changed {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(preview.Original),
			B:        difflib.SplitLines(preview.Updated),
			FromFile: string(path),
			ToFile:   string(path) + " (normalized)",
			Context:  diffContextLines,
		})
		if err != nil {
			return fmt.Errorf("diff %s: %w", path, err)
		}

		if err := w.ui.DisplayDiff(ctx, diff); err != nil {
			return err
		}
	}

	return nil
}

// collect resolves the candidate file list: every file under the given roots
// whose extension matches and whose path is not excluded, sorted for stable
// output. A nonexistent root is a startup precondition failure and surfaces
// immediately, before any per-file processing.
func (w *workflow) collect(args RunArgs) ([]m.Path, error) {
	roots := args.Paths
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, root := range roots {
		if _, err := w.fs.FileInfo(root); err != nil {
			return nil, fmt.Errorf("root path %s: %w", root, err)
		}

		err := w.fs.Walk(root, true, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if info.IsDir() || !matchesExtension(path, extensions) || matchesAny(path, excludes) {
				return nil
			}

			files = append(files, m.Path(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

func matchesAny(path string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// workerLimit clamps the parallel flag; zero or negative means sequential.
func workerLimit(parallel int) int {
	if parallel < 1 {
		return 1
	}

	return parallel
}
