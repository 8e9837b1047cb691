package yenc

import (
	"fmt"

	"github.com/rawbytedev/yenc/internal/common"
	"github.com/rawbytedev/yenc/pkg/checksum"
)

const (
	// Magic tags header-carrying output.
	Magic = "dynEncode"
	// magicV0 is the tag written by encoders that predate the checksum field.
	magicV0 = "DynEncode"

	VersionPlain    byte = 0x00 // offset only
	VersionChecksum byte = 0x01 // offset, then CRC-32 of the payload

	// magic + version + offset
	minHeaderLen = len(Magic) + 4
	maxHeaderLen = minHeaderLen + 2*checksum.Size
)

// Header is the prefix of DynamicEncode output:
//
//	"dynEncode" <version:2 hex> <offset:2 hex> [<checksum:8 hex, little-endian bytes>]
//
// A zero Present means the input carried no header and uses DefaultOffset.
// Legacy marks the older "DynEncode" tag, whose bodies never had \u escapes
// applied and so keep backslashes literal.
type Header struct {
	Present     bool
	Legacy      bool
	Version     byte
	Offset      byte
	HasChecksum bool
	Checksum    int32
}

// Len reports how many code units h occupies.
func (h Header) Len() int {
	switch {
	case !h.Present:
		return 0
	case h.HasChecksum:
		return maxHeaderLen
	default:
		return minHeaderLen
	}
}

// AppendTo writes h to dst. A header that is not Present writes nothing.
func (h Header) AppendTo(dst []byte) []byte {
	if !h.Present {
		return dst
	}
	if h.Legacy {
		dst = append(dst, magicV0...)
	} else {
		dst = append(dst, Magic...)
	}
	dst = common.AppendHexByte(dst, h.Version)
	dst = common.AppendHexByte(dst, h.Offset)
	if h.HasChecksum {
		dst = common.AppendHexInt32LE(dst, h.Checksum)
	}
	return dst
}

// ParseHeader reads the header at the start of units and returns it with the
// number of units it used. Input that does not begin with a magic tag, or is
// too short to hold the version and offset, is untagged: the result is a Header
// with DefaultOffset and a length of 0.
//
// Untagged output of Encode can in principle begin with the magic tag. That
// collision is improbable, not impossible.
func ParseHeader(units []rune) (Header, int, error) {
	untagged := Header{Offset: DefaultOffset}
	if len(units) < minHeaderLen {
		return untagged, 0, nil
	}
	v0 := hasPrefix(units, magicV0)
	if !v0 && !hasPrefix(units, Magic) {
		return untagged, 0, nil
	}

	pos := len(Magic)
	version, ok := common.ParseHexByte(units[pos:])
	if !ok {
		return Header{}, 0, fmt.Errorf("%w: version %q", ErrMalformedHeader, string(units[pos:pos+2]))
	}
	if version > VersionChecksum || (v0 && version != VersionPlain) {
		return Header{}, 0, fmt.Errorf("%w: %02x", ErrUnsupportedVersion, version)
	}
	pos += 2
	offset, ok := common.ParseHexByte(units[pos:])
	if !ok {
		return Header{}, 0, fmt.Errorf("%w: offset %q", ErrMalformedHeader, string(units[pos:pos+2]))
	}
	pos += 2

	h := Header{Present: true, Legacy: v0, Version: version, Offset: offset}
	if version == VersionChecksum {
		sum, ok := common.ParseHexInt32LE(units[pos:])
		if !ok {
			return Header{}, 0, fmt.Errorf("%w: checksum field", ErrMalformedHeader)
		}
		h.HasChecksum = true
		h.Checksum = sum
		pos += 2 * checksum.Size
	}
	return h, pos, nil
}

func hasPrefix(units []rune, tag string) bool {
	if len(units) < len(tag) {
		return false
	}
	for i := 0; i < len(tag); i++ {
		if units[i] != rune(tag[i]) {
			return false
		}
	}
	return true
}
