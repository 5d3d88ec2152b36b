package schnorr

import (
	"math/big"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/curve"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/keccak"
)

// HashBits is the size of the challenge h.
const HashBits = 512

// Sign signs m with private scalar s.
func Sign(s *big.Int, m []byte) domain.Signature {
	kb := keccak.KMACXOF256(crypto.ScalarBytes(s), m, crypto.ScalarBits, keccak.CustomNonce)
	k := new(big.Int).SetBytes(kb)
	k.Lsh(k, 2)

	u := curve.ScalarBaseMult(k)
	h := challenge(u, m)

	z := new(big.Int).Mul(h, s)
	z.Sub(k, z)
	z.Mod(z, curve.R)

	return domain.Signature{H: h, Z: z}
}

// Verify reports whether sig is a valid signature of m under pub.
func Verify(pub domain.PublicKey, m []byte, sig domain.Signature) bool {
	if sig.H == nil || sig.Z == nil || sig.H.Sign() < 0 || sig.Z.Sign() < 0 {
		return false
	}
	u := curve.ScalarBaseMult(sig.Z).Add(pub.ScalarMult(sig.H))
	return challenge(u, m).Cmp(sig.H) == 0
}

func challenge(u curve.Point, m []byte) *big.Int {
	return new(big.Int).SetBytes(keccak.KMACXOF256(u.XBytes(), m, HashBits, keccak.CustomTag))
}
