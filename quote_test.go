package yenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuote(t *testing.T) {
	cases := map[string]Quote{
		`"`:        DoubleQuote,
		"double":   DoubleQuote,
		"DOUBLE":   DoubleQuote,
		`'`:        SingleQuote,
		"single":   SingleQuote,
		"`":        Backtick,
		"template": Backtick,
		"backtick": Backtick,
	}
	for in, want := range cases {
		got, err := ParseQuote(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseQuote("guillemet")
	require.ErrorIs(t, err, ErrUnknownQuote)
}

func TestQuoteString(t *testing.T) {
	assert.Equal(t, "double", DoubleQuote.String())
	assert.Equal(t, "double", Quote(0).String())
	assert.Equal(t, "single", SingleQuote.String())
	assert.Equal(t, "template", Backtick.String())
	assert.Equal(t, "Quote(120)", Quote('x').String())
}

func TestPolicySets(t *testing.T) {
	dq := []byte{0, 8, 9, 10, 11, 12, 13, 34, 92, 61}
	sq := []byte{0, 8, 9, 10, 11, 12, 13, 39, 92, 61}
	count := func(p *policy) int {
		n := 0
		for _, v := range p.single {
			if v {
				n++
			}
		}
		return n
	}
	for _, v := range dq {
		assert.True(t, doubleQuotePolicy.escape(v, 'a', true), "double %d", v)
	}
	for _, v := range sq {
		assert.True(t, singleQuotePolicy.escape(v, 'a', true), "single %d", v)
	}
	assert.Equal(t, len(dq), count(doubleQuotePolicy))
	assert.Equal(t, len(sq), count(singleQuotePolicy))
	assert.False(t, doubleQuotePolicy.escape('\'', 0, false))
	assert.False(t, singleQuotePolicy.escape('"', 0, false))
}

func TestTemplatePolicy(t *testing.T) {
	p := templatePolicy
	for _, v := range []byte{'\r', '=', '`'} {
		assert.True(t, p.escape(v, 'a', true))
		assert.True(t, p.escape(v, 0, false))
	}
	assert.True(t, p.escape('$', '{', true))
	assert.True(t, p.escape('\\', 'u', true))
	assert.True(t, p.escape('\\', 'U', true))
	assert.False(t, p.escape('$', 'x', true))
	assert.False(t, p.escape('\\', 'n', true))
	assert.False(t, p.escape('$', 0, false))
	assert.False(t, p.escape('{', 0, false))
	assert.False(t, p.escape('\n', 'a', true))

	for _, hz := range p.pairs {
		assert.False(t, p.single[hz.lead], "pair lead %q is in the single set", hz.lead)
	}
}
