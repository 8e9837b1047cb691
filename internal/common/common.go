package common

import "encoding/binary"

const hexDigits = "0123456789abcdef"

// AppendHexByte appends b as two lowercase hex digits.
func AppendHexByte(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0F])
}

// AppendHexInt32LE appends v as four little-endian bytes, each written as a
// hex pair.
func AppendHexInt32LE(dst []byte, v int32) []byte {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], uint32(v))
	for _, b := range scratch {
		dst = AppendHexByte(dst, b)
	}
	return dst
}

// HexNibble returns the value of one hex digit, either case.
func HexNibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}

// ParseHexByte reads the two hex digits at the start of units.
func ParseHexByte(units []rune) (byte, bool) {
	if len(units) < 2 {
		return 0, false
	}
	hi, ok := HexNibble(units[0])
	if !ok {
		return 0, false
	}
	lo, ok := HexNibble(units[1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

// ParseHexInt32LE reads eight hex digits encoding four little-endian bytes.
func ParseHexInt32LE(units []rune) (int32, bool) {
	if len(units) < 8 {
		return 0, false
	}
	var scratch [4]byte
	for i := range scratch {
		b, ok := ParseHexByte(units[2*i:])
		if !ok {
			return 0, false
		}
		scratch[i] = b
	}
	return int32(binary.LittleEndian.Uint32(scratch[:])), true
}

// ParseHexUint16 reads four hex digits as a big-endian code unit, the form
// used by \uXXXX escapes.
func ParseHexUint16(units []rune) (rune, bool) {
	hi, ok := ParseHexByte(units)
	if !ok {
		return 0, false
	}
	lo, ok := ParseHexByte(units[2:])
	if !ok {
		return 0, false
	}
	return rune(hi)<<8 | rune(lo), true
}
