package keccak

import (
	"encoding/binary"
	"math/bits"
)

const (
	// StateSize is the Keccak-p[1600] state width b in bytes.
	StateSize = 200

	laneWidth = 64 // w
	logLane   = 6  // l = log2(w)
	numRounds = 24 // nr
)

// state is the 5x5 lane grid, lane (x, y) at index x+5y. Bit z of a lane is
// bit w*(5y+x)+z of the serialized state.
type state [25]uint64

var (
	rhoOffsets     [25]int
	roundConstants [numRounds]uint64
)

func init() {
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		rhoOffsets[x+5*y] = ((t + 1) * (t + 2) / 2) % laneWidth
		x, y = y, (2*x+3*y)%5
	}

	for i := range roundConstants {
		ir := 12 + 2*logLane - numRounds + i
		var c uint64
		for j := 0; j <= logLane; j++ {
			if rc(j + 7*ir) {
				c |= 1 << ((1 << j) - 1)
			}
		}
		roundConstants[i] = c
	}
}

// rc is the round-constant bit generator: an 8-bit LFSR with feedback from
// bit 8 into bits 0, 4, 5 and 6.
func rc(t int) bool {
	u := t % 255
	if u == 0 {
		return true
	}
	r := uint16(1)
	for i := 1; i <= u; i++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return r&1 == 1
}

func (a *state) theta() {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 25; y += 5 {
			a[y+x] ^= d
		}
	}
}

func (a *state) rho() {
	for i := 1; i < 25; i++ {
		a[i] = bits.RotateLeft64(a[i], rhoOffsets[i])
	}
}

func (a *state) pi() {
	old := *a
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[x+5*y] = old[(x+3*y)%5+5*x]
		}
	}
}

func (a *state) chi() {
	for y := 0; y < 25; y += 5 {
		var row [5]uint64
		copy(row[:], a[y:y+5])
		for x := 0; x < 5; x++ {
			a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

func (a *state) iota(round int) {
	a[0] ^= roundConstants[round]
}

// permute applies Keccak-p[1600, 24].
func (a *state) permute() {
	for i := 0; i < numRounds; i++ {
		a.theta()
		a.rho()
		a.pi()
		a.chi()
		a.iota(i)
	}
}

func (a *state) xorIn(block []byte) {
	for i := 0; i < len(block)/8; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
}

func (a *state) appendBytes(dst []byte, n int) []byte {
	var buf [StateSize]byte
	for i, lane := range a {
		binary.LittleEndian.PutUint64(buf[8*i:], lane)
	}
	return append(dst, buf[:n]...)
}

// Permute applies Keccak-p[1600, 24] in place to a StateSize-byte buffer.
// It panics if len(b) != StateSize.
func Permute(b []byte) {
	if len(b) != StateSize {
		panic("keccak: state must be 200 bytes")
	}
	var a state
	a.xorIn(b)
	a.permute()
	copy(b, a.appendBytes(nil, StateSize))
}
