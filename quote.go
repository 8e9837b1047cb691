package yenc

import (
	"fmt"
	"strings"
)

// Quote names the string literal delimiter the encoded text will sit inside.
// The zero value behaves as DoubleQuote.
type Quote byte

const (
	DoubleQuote Quote = '"'
	SingleQuote Quote = '\''
	Backtick    Quote = '`'
)

// ParseQuote accepts a delimiter character or its name.
func ParseQuote(s string) (Quote, error) {
	switch strings.ToLower(s) {
	case `"`, "double", "double-quote":
		return DoubleQuote, nil
	case `'`, "single", "single-quote":
		return SingleQuote, nil
	case "`", "backtick", "template":
		return Backtick, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuote, s)
}

func (q Quote) String() string {
	switch q {
	case 0, DoubleQuote:
		return "double"
	case SingleQuote:
		return "single"
	case Backtick:
		return "template"
	default:
		return fmt.Sprintf("Quote(%d)", byte(q))
	}
}

// pair is a two unit sequence that is unsafe even though neither unit is.
type pair struct {
	lead, next byte
}

// policy lists the shifted values that must be escaped inside one kind of
// literal. Escaping the lead of a pair is enough to break it up. Pair leads
// are never in the single set, which keeps the optimizer's counts exact.
type policy struct {
	single  [256]bool
	flagged []byte
	pairs   []pair
}

func newPolicy(flagged []byte, pairs ...pair) *policy {
	p := &policy{flagged: flagged, pairs: pairs}
	for _, v := range flagged {
		p.single[v] = true
	}
	return p
}

func (p *policy) escape(cur, next byte, hasNext bool) bool {
	if p.single[cur] {
		return true
	}
	if !hasNext {
		return false
	}
	for _, hz := range p.pairs {
		if cur == hz.lead && next == hz.next {
			return true
		}
	}
	return false
}

var (
	doubleQuotePolicy = newPolicy([]byte{0, '\b', '\t', '\n', '\v', '\f', '\r', '"', '\\', EscapeMarker})
	singleQuotePolicy = newPolicy([]byte{0, '\b', '\t', '\n', '\v', '\f', '\r', '\'', '\\', EscapeMarker})
	templatePolicy    = newPolicy([]byte{'\r', EscapeMarker, '`'},
		pair{'$', '{'},
		pair{'\\', 'U'},
		pair{'\\', 'u'},
	)
)

func (q Quote) policy() (*policy, error) {
	switch q {
	case 0, DoubleQuote:
		return doubleQuotePolicy, nil
	case SingleQuote:
		return singleQuotePolicy, nil
	case Backtick:
		return templatePolicy, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuote, q)
	}
}
