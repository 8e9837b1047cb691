package yenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderAppendParse(t *testing.T) {
	headers := []Header{
		{Present: true, Version: VersionPlain, Offset: 0},
		{Present: true, Version: VersionPlain, Offset: 0xFF},
		{Present: true, Legacy: true, Version: VersionPlain, Offset: 0x2A},
		{Present: true, Version: VersionChecksum, Offset: 0x2A, HasChecksum: true, Checksum: -1},
		{Present: true, Version: VersionChecksum, Offset: 0x80, HasChecksum: true, Checksum: 0x0376E6E7},
	}
	for _, h := range headers {
		enc := h.AppendTo(nil)
		require.Len(t, enc, h.Len())
		got, n, err := ParseHeader([]rune(string(enc)))
		require.NoError(t, err)
		require.Equal(t, h.Len(), n)
		require.Equal(t, h, got)
	}
}

func TestHeaderWireForm(t *testing.T) {
	h := Header{Present: true, Version: VersionChecksum, Offset: 0xAB, HasChecksum: true, Checksum: 0x0376E6E7}
	require.Equal(t, "dynEncode01abe7e67603", string(h.AppendTo(nil)))
	require.Empty(t, Header{}.AppendTo(nil))
	require.Equal(t, 0, Header{}.Len())
}

func TestParseHeaderUntagged(t *testing.T) {
	for _, in := range []string{
		"",
		"hello world, nothing to see",
		"dynEncode00", // too short for an offset
		"dynEncode0",
		"dynencode002a",
	} {
		h, n, err := ParseHeader([]rune(in))
		require.NoError(t, err, in)
		require.Equal(t, 0, n, in)
		require.Equal(t, Header{Offset: DefaultOffset}, h, in)
	}
}

func TestParseHeaderUpperCaseHex(t *testing.T) {
	h, n, err := ParseHeader([]rune("dynEncode01FFE7E67603"))
	require.NoError(t, err)
	require.Equal(t, maxHeaderLen, n)
	require.Equal(t, byte(0xFF), h.Offset)
	require.Equal(t, int32(0x0376E6E7), h.Checksum)
}

func TestParseHeaderV0Magic(t *testing.T) {
	h, n, err := ParseHeader([]rune("DynEncode0010rest"))
	require.NoError(t, err)
	require.Equal(t, minHeaderLen, n)
	require.Equal(t, Header{Present: true, Legacy: true, Version: VersionPlain, Offset: 0x10}, h)
	require.Equal(t, "DynEncode0010", string(h.AppendTo(nil)))

	_, _, err = ParseHeader([]rune("DynEncode0110e7e67603"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParseHeaderMalformed(t *testing.T) {
	for _, in := range []string{
		"dynEncodezz00body",
		"dynEncode00zzbody",
		"dynEncode01000011", // checksum cut short
		"dynEncode0100e7e676zz",
	} {
		_, _, err := ParseHeader([]rune(in))
		require.ErrorIs(t, err, ErrMalformedHeader, in)

		out, err := Decode(in)
		require.ErrorIs(t, err, ErrMalformedHeader, in)
		require.Nil(t, out)
	}
}

func TestParseHeaderUnsupportedVersion(t *testing.T) {
	_, _, err := ParseHeader([]rune("dynEncode0200body"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	_, err = Decode("dynEncodeff00body")
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeV0Header(t *testing.T) {
	// an older encoder's output at offset 0
	out, err := Decode("DynEncode0000abc")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)
}

func TestDecodeV0HeaderKeepsBackslashes(t *testing.T) {
	// older template output could carry a literal \u sequence
	out, err := Decode("DynEncode0000" + `\u0041`)
	require.NoError(t, err)
	require.Equal(t, []byte{0x5c, 0x75, 0x30, 0x30, 0x34, 0x31}, out)

	h, _, err := ParseHeader([]rune("DynEncode0000" + `\U0041`))
	require.NoError(t, err)
	require.True(t, h.Legacy)

	// the current tag still reads it as one unit
	out, err = NewCodec(Options{}).Decode("dynEncode0000" + `\u0041`)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41}, out)
}
