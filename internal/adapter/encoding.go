package adapter

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	m "asciify.dev/pkg/asciify/internal/model"
)

// Byte-order marks recognized on the decode side. The UTF-8 mark is also
// what the encode side prepends to every rewritten file.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Codec converts between on-disk bytes and in-memory text. Decoding sniffs
// the byte-order mark and strips it; encoding always produces UTF-8 with a
// mark. The mark inspection is a heuristic, not a content-based guess: a
// file without a mark is assumed to be Windows-1252, which decodes every
// byte value to some character and therefore never fails.
type Codec interface {
	Decode(raw []byte) (string, m.Encoding, error)
	Encode(text string) []byte
}

// BOMCodec is the concrete Codec backed by golang.org/x/text decoders.
type BOMCodec struct{}

// NewBOMCodec constructs a BOMCodec ready to be wired into the normalizer.
func NewBOMCodec() *BOMCodec {
	return &BOMCodec{}
}

// Decode turns raw file bytes into text, reporting which encoding was
// detected. Malformed sequences in the multi-byte encodings are handled
// best-effort by the underlying decoder.
func (c *BOMCodec) Decode(raw []byte) (string, m.Encoding, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return string(raw[len(bomUTF8):]), m.EncodingUTF8, nil

	case bytes.HasPrefix(raw, bomUTF16LE):
		text, err := decodeUTF16(raw[len(bomUTF16LE):], unicode.LittleEndian)

		return text, m.EncodingUTF16LE, err

	case bytes.HasPrefix(raw, bomUTF16BE):
		text, err := decodeUTF16(raw[len(bomUTF16BE):], unicode.BigEndian)

		return text, m.EncodingUTF16BE, err

	default:
		text, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", m.EncodingWindows1252, fmt.Errorf("decode windows-1252: %w", err)
		}

		return string(text), m.EncodingWindows1252, nil
	}
}

// Encode produces UTF-8 bytes prefixed with the UTF-8 byte-order mark.
func (c *BOMCodec) Encode(text string) []byte {
	out := make([]byte, 0, len(bomUTF8)+len(text))
	out = append(out, bomUTF8...)

	return append(out, text...)
}

func decodeUTF16(payload []byte, endianness unicode.Endianness) (string, error) {
	decoded, err := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}

	return string(decoded), nil
}
