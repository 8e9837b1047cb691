package yenc

import (
	"strings"

	"github.com/rawbytedev/yenc/pkg/checksum"
)

// Options configures a Codec.
type Options struct {
	// Quote selects the literal the output must be safe in. Zero is DoubleQuote.
	Quote Quote
	// Checksum replaces the CRC-32 used to fill and verify version 01 headers.
	Checksum ChecksumFunc
	// OmitChecksum writes a version 00 header without the checksum field.
	OmitChecksum bool
}

// Codec is a configured dynamic-offset encoder and decoder. It holds no
// mutable state and may be shared between goroutines.
type Codec struct {
	Opts Options
}

// NewCodec returns a Codec using opts.
func NewCodec(opts Options) *Codec {
	return &Codec{Opts: opts}
}

func (c *Codec) sum() ChecksumFunc {
	if c.Opts.Checksum != nil {
		return c.Opts.Checksum
	}
	return checksum.CRC32
}

// Encode writes the header followed by src shifted by the cheapest offset.
func (c *Codec) Encode(src []byte) (string, error) {
	p, err := c.Opts.Quote.policy()
	if err != nil {
		return "", err
	}
	pl := plan(src, p)

	h := Header{Present: true, Version: VersionPlain, Offset: pl.Offset}
	if !c.Opts.OmitChecksum {
		h.Version = VersionChecksum
		h.HasChecksum = true
		h.Checksum = c.sum()(src)
	}

	var scratch [maxHeaderLen]byte
	var sb strings.Builder
	// shifted values above 0x7F take two UTF-8 bytes
	sb.Grow(maxHeaderLen + 2*(len(src)+pl.Escapes) + 2)
	sb.Write(h.AppendTo(scratch[:0]))
	appendBody(&sb, src, pl.Offset, p)
	return sb.String(), nil
}

// Decode is the package Decode verifying checksums with c's ChecksumFunc.
func (c *Codec) Decode(s string) ([]byte, error) {
	return decodeUnits(toUnits(s), c.sum())
}

// DecodeLatin1 is the package DecodeLatin1 verifying checksums with c's
// ChecksumFunc.
func (c *Codec) DecodeLatin1(s string) ([]byte, error) {
	return decodeUnits(latin1Units(s), c.sum())
}

// DecodeRunes is the package DecodeRunes verifying checksums with c's
// ChecksumFunc.
func (c *Codec) DecodeRunes(units []rune) ([]byte, error) {
	return decodeUnits(units, c.sum())
}
