package yenc

import (
	"strings"
)

// Plan is the optimizer's choice for one payload.
type Plan struct {
	Offset byte
	// Escapes counts the escape pairs the quote requires at Offset. The trailing
	// backslash fix-up may add one more.
	Escapes int
}

// Analyze runs the offset search without encoding.
func Analyze(src []byte, q Quote) (Plan, error) {
	p, err := q.policy()
	if err != nil {
		return Plan{}, err
	}
	return plan(src, p), nil
}

// DynamicEncode encodes src for use inside a q delimited literal with the
// cheapest offset and a version 01 header carrying the CRC-32 of src.
func DynamicEncode(src []byte, q Quote) (string, error) {
	return NewCodec(Options{Quote: q}).Encode(src)
}

// plan builds a histogram of src and prices every offset against it instead
// of rescanning src once per offset. Pair hazards are counted per lead value
// for the byte difference that the pair has at every offset, since
// (a+o)-(b+o) == a-b.
func plan(src []byte, p *policy) Plan {
	var counts [256]int
	var pairCounts [][256]int
	if len(p.pairs) > 0 {
		pairCounts = make([][256]int, len(p.pairs))
	}
	for i, b := range src {
		counts[b]++
		if i+1 == len(src) {
			break
		}
		d := b - src[i+1]
		for k, hz := range p.pairs {
			if d == hz.lead-hz.next {
				pairCounts[k][b]++
			}
		}
	}

	best := Plan{Escapes: -1}
	for o := 0; o < 256; o++ {
		off := byte(o)
		n := 0
		for _, v := range p.flagged {
			n += counts[v-off]
		}
		for k, hz := range p.pairs {
			n += pairCounts[k][hz.lead-off]
		}
		// strict comparison keeps the lowest offset on ties
		if best.Escapes < 0 || n < best.Escapes {
			best = Plan{Offset: off, Escapes: n}
		}
	}
	return best
}

// appendBody writes src shifted by off, escaping what p requires. A final
// literal backslash would escape the closing delimiter and is always paired.
func appendBody(sb *strings.Builder, src []byte, off byte, p *policy) {
	for i, b := range src {
		e := b + off
		var esc bool
		if i+1 < len(src) {
			esc = p.escape(e, src[i+1]+off, true)
		} else {
			esc = p.escape(e, 0, false) || e == '\\'
		}
		if esc {
			sb.WriteByte(EscapeMarker)
			e += escapeShift
		}
		sb.WriteRune(rune(e))
	}
}
