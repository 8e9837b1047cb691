// Package yenc implements a yEnc style byte-to-text codec for carrying binary
// payloads inside string literals and HTML.
//
// Encode shifts every byte by 42 and escapes the few output values that break
// a text transport. DynamicEncode searches all 256 shifts for the one that needs
// the fewest escapes inside a given kind of quoted literal and prefixes the
// output with a small header carrying the shift and a CRC-32 of the payload.
// Decode accepts both forms.
//
// Encoded strings are sequences of code units in 0-255, returned as UTF-8 with
// one rune per code unit.
package yenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rawbytedev/yenc/internal/common"
	"github.com/rawbytedev/yenc/pkg/checksum"
)

const (
	// DefaultOffset is the shift used by Encode and by untagged input.
	DefaultOffset byte = 42
	// EscapeMarker introduces an escape pair.
	EscapeMarker = '='

	escapeShift byte = 64
)

var (
	ErrChecksumMismatch   = errors.New("yenc: checksum mismatch")
	ErrMalformedHeader    = errors.New("yenc: malformed header")
	ErrUnsupportedVersion = errors.New("yenc: unsupported header version")
	ErrUnknownQuote       = errors.New("yenc: unknown quote")
)

// ChecksumFunc computes the integrity value stored in a version 01 header.
type ChecksumFunc func([]byte) int32

// Encode applies the fixed offset of 42 to src. NUL, LF, CR and '=' in the
// shifted output are written as escape pairs. No header is emitted.
func Encode(src []byte) string {
	var sb strings.Builder
	sb.Grow(len(src) + len(src)/2)
	for _, b := range src {
		e := b + DefaultOffset
		switch e {
		case 0, '\n', '\r', EscapeMarker:
			sb.WriteByte(EscapeMarker)
			e += escapeShift
		}
		sb.WriteRune(rune(e))
	}
	return sb.String()
}

// Decode reverses Encode and DynamicEncode output. s is read as UTF-8; a byte
// that does not start a valid UTF-8 sequence is taken as one code unit of its
// own value. Latin-1 text can happen to be valid UTF-8, so use DecodeLatin1
// for it.
func Decode(s string) ([]byte, error) {
	return decodeUnits(toUnits(s), checksum.CRC32)
}

// DecodeLatin1 is Decode for text held one byte per code unit, such as a
// file the encoded string was written to with a binary/Latin-1 encoding.
func DecodeLatin1(s string) ([]byte, error) {
	return decodeUnits(latin1Units(s), checksum.CRC32)
}

// DecodeRunes is Decode over code units that have already been split out, such
// as the characters of a string read back from an HTML document.
func DecodeRunes(units []rune) ([]byte, error) {
	return decodeUnits(units, checksum.CRC32)
}

func latin1Units(s string) []rune {
	units := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		units[i] = rune(s[i])
	}
	return units
}

func toUnits(s string) []rune {
	units := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = rune(s[i])
		}
		units = append(units, r)
		i += size
	}
	return units
}

func decodeUnits(units []rune, sum ChecksumFunc) ([]byte, error) {
	h, n, err := ParseHeader(units)
	if err != nil {
		return nil, err
	}
	out := decodeBody(units[n:], h.Offset, h.Present && !h.Legacy)
	if h.HasChecksum {
		if got := sum(out); got != h.Checksum {
			return nil, fmt.Errorf("%w: header has %d, payload has %d", ErrChecksumMismatch, h.Checksum, got)
		}
	}
	return out, nil
}

// decodeBody inverts the shift. A trailing unpaired marker yields nothing.
// unicodeEscapes enables \uXXXX recovery, which only header-tagged bodies get.
func decodeBody(units []rune, offset byte, unicodeEscapes bool) []byte {
	out := make([]byte, 0, len(units))
	escaped := false
	for i := 0; i < len(units); i++ {
		c := units[i]
		if c == EscapeMarker && !escaped {
			escaped = true
			continue
		}
		if unicodeEscapes && c == '\\' && i < len(units)-5 && (units[i+1] == 'u' || units[i+1] == 'U') {
			if v, ok := common.ParseHexUint16(units[i+2:]); ok {
				c = v
				i += 5
			}
		}
		if c > 0xFF {
			if b, ok := htmlOverrides[c]; ok {
				c = rune(b)
			}
		}
		if escaped {
			escaped = false
			c -= rune(escapeShift)
		}
		// byte arithmetic wraps, covering both sides of the 256 boundary
		out = append(out, byte(c)-offset)
	}
	return out
}
