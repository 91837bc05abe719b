// Package model defines the data structures shared by the asciify layers.
package model

// Path represents a file system path.
type Path string

// Encoding identifies the detected on-disk text encoding of a source file.
type Encoding string

// Encodings recognized by the byte-order-mark sniffer.
const (
	// EncodingUTF8 is UTF-8 with a byte-order mark.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingUTF16LE is UTF-16 little-endian with a byte-order mark.
	EncodingUTF16LE Encoding = "utf-16le"
	// EncodingUTF16BE is UTF-16 big-endian with a byte-order mark.
	EncodingUTF16BE Encoding = "utf-16be"
	// EncodingWindows1252 is the single-byte fallback assumed for files
	// that carry no byte-order mark.
	EncodingWindows1252 Encoding = "windows-1252"
)

// FileResult describes the outcome of normalizing a single source file.
type FileResult struct {
	Path         Path
	Encoding     Encoding
	Replacements int  // characters rewritten inside comments
	Changed      bool // content differs and was (or would be) rewritten
	Skipped      bool // file could not be processed; counted as unchanged
}

// RunSummary aggregates counters across a whole traversal.
type RunSummary struct {
	Examined int
	Changed  int
	Replaced int
	Skipped  int
}

// Add folds one file result into the summary.
func (s *RunSummary) Add(result FileResult) {
	s.Examined++
	s.Replaced += result.Replacements

	if result.Changed {
		s.Changed++
	}

	if result.Skipped {
		s.Skipped++
	}
}
