// Package checksum implements the 32-bit cyclic redundancy check used by the
// yenc container header.
//
// The check is the MSB-first (non-reflected) table-driven CRC-32 with no final
// XOR. With the default seed and polynomial it matches CRC-32/MPEG-2. The
// result is reported as a signed 32-bit integer because that is how it is
// written into the header.
package checksum

import (
	"encoding/binary"
	"hash"
	"sync"
)

const (
	DefaultSeed       uint32 = 0xFFFFFFFF
	DefaultPolynomial uint32 = 0x04C11DB7
	Size                     = 4
)

// Table is a 256-word lookup table for one polynomial.
type Table [256]uint32

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// MakeTable builds the lookup table for poly by running eight shift steps per
// byte value, XORing in the polynomial whenever the top bit falls out.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	for i := range t {
		c := uint32(i) << 24
		for range 8 {
			if c&0x80000000 != 0 {
				c = c<<1 ^ poly
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return t
}

// DefaultTable returns the shared read-only table for DefaultPolynomial.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		defaultTable = MakeTable(DefaultPolynomial)
	})
	return defaultTable
}

// Update folds p into the running value crc.
func Update(crc uint32, tab *Table, p []byte) uint32 {
	for _, b := range p {
		crc = crc<<8 ^ tab[byte(crc>>24)^b]
	}
	return crc
}

// Sum computes the checksum of data for an arbitrary seed and polynomial.
func Sum(data []byte, seed, poly uint32) int32 {
	tab := DefaultTable()
	if poly != DefaultPolynomial {
		tab = MakeTable(poly)
	}
	return int32(Update(seed, tab, data))
}

// CRC32 computes the checksum of data with DefaultSeed and DefaultPolynomial.
func CRC32(data []byte) int32 {
	return int32(Update(DefaultSeed, DefaultTable(), data))
}

type digest struct {
	seed uint32
	crc  uint32
	tab  *Table
}

// New returns a streaming hash.Hash32 seeded with seed. A nil tab selects the
// default table. Sum appends the value big-endian like the hash/crc32 digests.
func New(seed uint32, tab *Table) hash.Hash32 {
	if tab == nil {
		tab = DefaultTable()
	}
	return &digest{seed: seed, crc: seed, tab: tab}
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Reset()         { d.crc = d.seed }
func (d *digest) Sum32() uint32  { return d.crc }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint32(in, d.crc)
}
