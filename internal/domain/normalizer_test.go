package domain

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asciify.dev/pkg/asciify/internal/adapter"
	m "asciify.dev/pkg/asciify/internal/model"
)

// fakeFS implements adapter.SourceFSAdapter in memory so normalizer tests can
// observe exactly which writes happen.
type fakeFS struct {
	files    map[m.Path][]byte
	readErr  error
	writeErr error
	writes   map[m.Path][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:  make(map[m.Path][]byte),
		writes: make(map[m.Path][]byte),
	}
}

func (f *fakeFS) Walk(root m.Path, _ bool, _ adapter.FilepathWalkFunc) error {
	return nil
}

func (f *fakeFS) ReadFile(path m.Path) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}

	content, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return content, nil
}

func (f *fakeFS) WriteFile(path m.Path, content []byte, _ os.FileMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}

	f.writes[path] = content
	f.files[path] = content

	return nil
}

func (f *fakeFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return nil, os.ErrNotExist
}

func (f *fakeFS) RelPath(_, target m.Path) (m.Path, error) {
	return target, nil
}

func (f *fakeFS) JoinPath(elem ...string) m.Path {
	return m.Path(elem[len(elem)-1])
}

func TestNormalizer_RewritesChangedFile(t *testing.T) {
	fs := newFakeFS()
	// Windows-1252 content, no byte-order mark: 0xE9 is e-acute.
	fs.files["a.c"] = []byte("// caf\xE9\n")

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("a.c", false)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, 1, result.Replacements)
	assert.Equal(t, m.EncodingWindows1252, result.Encoding)
	assert.Equal(t, []byte("\xEF\xBB\xBF// caf?\n"), fs.writes["a.c"])
}

func TestNormalizer_NoWriteWhenUnchanged(t *testing.T) {
	fs := newFakeFS()
	fs.files["plain.c"] = []byte("// plain ascii\nint x;\n")

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("plain.c", false)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Zero(t, result.Replacements)
	assert.Empty(t, fs.writes, "unchanged file must not be rewritten")
}

func TestNormalizer_LiteralContentDoesNotTriggerWrite(t *testing.T) {
	fs := newFakeFS()
	// UTF-8 with mark; the non-ASCII lives inside a string literal.
	fs.files["lit.c"] = append([]byte("\xEF\xBB\xBF"), []byte("char *s = \"café\";\n")...)

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("lit.c", false)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Empty(t, fs.writes)
}

func TestNormalizer_DryRunReportsWithoutWriting(t *testing.T) {
	fs := newFakeFS()
	fs.files["a.c"] = []byte("/* \xA9 2024 */\n")

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("a.c", true)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, 1, result.Replacements)
	assert.Empty(t, fs.writes)
}

func TestNormalizer_ReadFailure(t *testing.T) {
	fs := newFakeFS()
	fs.readErr = errors.New("permission denied")

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("a.c", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.c")
	assert.False(t, result.Changed)
}

func TestNormalizer_WriteFailure(t *testing.T) {
	fs := newFakeFS()
	fs.files["a.c"] = []byte("// \xE9\n")
	fs.writeErr = errors.New("read-only filesystem")

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("a.c", false)
	require.Error(t, err)
	assert.False(t, result.Changed, "failed write must count as unchanged")
}

func TestNormalizer_UTF16Input(t *testing.T) {
	fs := newFakeFS()
	// UTF-16 LE with mark: "// ©\n"
	fs.files["w.c"] = []byte{
		0xFF, 0xFE,
		'/', 0x00, '/', 0x00, ' ', 0x00, 0xA9, 0x00, '\n', 0x00,
	}

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	result, err := n.Normalize("w.c", false)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, m.EncodingUTF16LE, result.Encoding)
	// Rewritten files always come back as UTF-8 with a mark.
	assert.Equal(t, []byte("\xEF\xBB\xBF// (c)\n"), fs.writes["w.c"])
}

func TestNormalizer_PreviewReturnsBothTexts(t *testing.T) {
	fs := newFakeFS()
	fs.files["p.c"] = []byte("// a \x96 b\n") // 0x96 is an en dash in Windows-1252

	n := NewNormalizer(fs, adapter.NewBOMCodec())

	preview, err := n.Preview("p.c")
	require.NoError(t, err)

	assert.Equal(t, "// a – b\n", preview.Original)
	assert.Equal(t, "// a - b\n", preview.Updated)
	assert.True(t, preview.Result.Changed)
	assert.Empty(t, fs.writes)
}
