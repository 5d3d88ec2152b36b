package keccak

// Domain-separation bytes: suffix bits (LSB first) followed by the leading
// pad10*1 bit.
const (
	dsKeccak = 0x01 // no suffix
	dsSHAKE  = 0x1f // 1111
	dsCSHAKE = 0x04 // 00
)

// Keccak is the KECCAK[c=512] sponge: it absorbs n followed by the suffix bits
// carried in ds, then squeezes d bits. d must be a non-negative multiple of 8.
func Keccak(n []byte, ds byte, d int) []byte {
	if d < 0 || d%8 != 0 {
		panic("keccak: output length must be a non-negative multiple of 8 bits")
	}
	p := make([]byte, 0, len(n)+Rate)
	p = append(p, n...)
	p = append(p, Pad101(Rate, len(n), ds)...)

	var s state
	for off := 0; off < len(p); off += Rate {
		s.xorIn(p[off : off+Rate])
		s.permute()
	}

	outLen := d / 8
	z := make([]byte, 0, outLen+Rate)
	z = s.appendBytes(z, Rate)
	for len(z) < outLen {
		s.permute()
		z = s.appendBytes(z, Rate)
	}
	return Trunc(z, outLen)
}

// SHAKE256 returns d bits of SHAKE256(m).
func SHAKE256(m []byte, d int) []byte {
	return Keccak(m, dsSHAKE, d)
}
