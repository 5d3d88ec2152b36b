package keccak

// Rate is the sponge rate in bytes (r = 1088 bits) and the bytepad width used
// by cSHAKE256 and KMACXOF256.
const Rate = 136

// LeftEncode returns n || x_1 .. x_n, where x_1 .. x_n is the minimal
// big-endian byte representation of x and n its length (n = 1 when x = 0).
//
// Bytes are laid out LSB-first, so the bit-reversed enc8 of the bit-string
// form collapses to the plain byte value: LeftEncode(0) is 01 00.
func LeftEncode(x uint64) []byte {
	b := minimalBytes(x)
	return append([]byte{byte(len(b))}, b...)
}

// RightEncode returns x_1 .. x_n || n; RightEncode(0) is 00 01.
func RightEncode(x uint64) []byte {
	b := minimalBytes(x)
	return append(b, byte(len(b)))
}

func minimalBytes(x uint64) []byte {
	n := 1
	for v := x >> 8; v > 0; v >>= 8 {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(x)
		x >>= 8
	}
	return b
}

// EncodeString returns left_encode(bit length of s) || s.
func EncodeString(s []byte) []byte {
	out := LeftEncode(uint64(len(s)) * 8)
	return append(out, s...)
}

// Bytepad prepends left_encode(w) to x and zero-pads the result to a positive
// multiple of w bytes.
func Bytepad(x []byte, w int) []byte {
	out := LeftEncode(uint64(w))
	out = append(out, x...)
	if rem := len(out) % w; rem != 0 {
		out = append(out, make([]byte, w-rem)...)
	}
	return out
}

// Pad101 returns the pad10*1 padding for an m-byte message absorbed at a rate
// of x bytes. ds carries the domain-separation suffix bits followed by the
// leading padding bit; the trailing padding bit is the top bit of the last
// byte. The result is never empty and m+len(result) is a multiple of x.
func Pad101(x, m int, ds byte) []byte {
	p := make([]byte, x-m%x)
	p[0] = ds
	p[len(p)-1] |= 0x80
	return p
}

// Trunc returns a copy of the first i bytes of x. It panics if i > len(x).
func Trunc(x []byte, i int) []byte {
	out := make([]byte, i)
	copy(out, x[:i])
	return out
}
