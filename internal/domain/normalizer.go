package domain

import (
	"fmt"
	"log/slog"
	"os"

	"asciify.dev/pkg/asciify/internal/adapter"
	m "asciify.dev/pkg/asciify/internal/model"
)

// defaultFileMode is used when the original permissions cannot be read back.
const defaultFileMode = os.FileMode(0o644)

// Preview is the outcome of running the scanner over a decoded file without
// touching the disk.
type Preview struct {
	Result   m.FileResult
	Original string
	Updated  string
}

// Normalizer rewrites one file at a time: decode, scan, compare, and
// conditionally persist as UTF-8 with a byte-order mark. Each invocation is
// independent; the normalizer holds no state across files.
type Normalizer interface {
	// Normalize processes the file at path. When dryRun is true the result
	// reports what would change but nothing is written.
	Normalize(path m.Path, dryRun bool) (m.FileResult, error)

	// Preview decodes and scans the file, returning both text forms so
	// callers can render diffs or counts without writing.
	Preview(path m.Path) (Preview, error)
}

type normalizer struct {
	fs    adapter.SourceFSAdapter
	codec adapter.Codec
}

// NewNormalizer creates a Normalizer backed by the given filesystem and
// encoding adapters.
func NewNormalizer(fs adapter.SourceFSAdapter, codec adapter.Codec) Normalizer {
	return &normalizer{fs: fs, codec: codec}
}

func (n *normalizer) Preview(path m.Path) (Preview, error) {
	preview := Preview{Result: m.FileResult{Path: path}}

	raw, err := n.fs.ReadFile(path)
	if err != nil {
		return preview, fmt.Errorf("read %s: %w", path, err)
	}

	text, encoding, err := n.codec.Decode(raw)
	preview.Result.Encoding = encoding

	if err != nil {
		return preview, fmt.Errorf("decode %s as %s: %w", path, encoding, err)
	}

	scanned := Scan(text)
	preview.Original = text
	preview.Updated = scanned.Text
	preview.Result.Replacements = scanned.Replaced
	preview.Result.Changed = scanned.Text != text

	return preview, nil
}

func (n *normalizer) Normalize(path m.Path, dryRun bool) (m.FileResult, error) {
	preview, err := n.Preview(path)
	if err != nil {
		return preview.Result, err
	}

	if !preview.Result.Changed || dryRun {
		return preview.Result, nil
	}

	perm := defaultFileMode
	if info, infoErr := n.fs.FileInfo(path); infoErr == nil {
		perm = info.Mode().Perm()
	}

	if err := n.fs.WriteFile(path, n.codec.Encode(preview.Updated), perm); err != nil {
		preview.Result.Changed = false

		return preview.Result, fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("rewrote file",
		"path", path,
		"encoding", preview.Result.Encoding,
		"replacements", preview.Result.Replacements,
	)

	return preview.Result, nil
}
