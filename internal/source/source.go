// Package source detects a source file's text encoding and BOM and
// round-trips it back on output: UTF-8 with or without BOM, and
// UTF-16 in either byte order.
package source

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies a detected text encoding and BOM presence.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect inspects the first bytes of raw and returns its encoding plus
// the UTF-8 decoding of its text (BOM stripped). Unrecognized byte
// sequences are assumed to already be UTF-8 without a BOM.
func Detect(raw []byte) (Encoding, string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return UTF8BOM, string(raw[len(bomUTF8):]), nil

	case bytes.HasPrefix(raw, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		text, err := dec.Bytes(raw)
		if err != nil {
			return UTF16LE, "", err
		}
		return UTF16LE, string(text), nil

	case bytes.HasPrefix(raw, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		text, err := dec.Bytes(raw)
		if err != nil {
			return UTF16BE, "", err
		}
		return UTF16BE, string(text), nil

	default:
		return UTF8, string(raw), nil
	}
}

// Encode re-serializes text back to enc's byte representation,
// restoring whatever BOM the source originally carried.
func Encode(enc Encoding, text string) ([]byte, error) {
	switch enc {
	case UTF8BOM:
		return append(append([]byte(nil), bomUTF8...), []byte(text)...), nil
	case UTF16LE:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		return enc.Bytes([]byte(text))
	case UTF16BE:
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
		return enc.Bytes([]byte(text))
	default:
		return []byte(text), nil
	}
}

// HasBOM reports whether enc carries an explicit byte-order mark.
func (e Encoding) HasBOM() bool { return e != UTF8 }
