package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Reader is the default secure random source.
var Reader io.Reader = rand.Reader

// RandomBits returns bits uniformly random bits from r. bits must be a
// multiple of 8.
func RandomBits(r io.Reader, bits int) ([]byte, error) {
	if bits < 0 || bits%8 != 0 {
		return nil, fmt.Errorf("random bits: %d is not a whole number of bytes", bits)
	}
	if r == nil {
		r = Reader
	}
	b := make([]byte, bits/8)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("random bits: %w", err)
	}
	return b, nil
}

// RandomScalar returns 4 * random(bits), an ephemeral scalar in the
// prime-order subgroup's cofactor-cleared form.
func RandomScalar(r io.Reader, bits int) (*big.Int, error) {
	b, err := RandomBits(r, bits)
	if err != nil {
		return nil, err
	}
	k := new(big.Int).SetBytes(b)
	return k.Lsh(k, 2), nil
}
