package ecies

import (
	"fmt"
	"io"
	"math/big"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/curve"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/keccak"
	"kmacrypt/internal/protocol/aead"
	"kmacrypt/internal/util/memzero"
)

// Encrypt encrypts m to pub, drawing the ephemeral scalar from rand.
func Encrypt(rand io.Reader, pub domain.PublicKey, m []byte) (domain.ECCryptogram, error) {
	k, err := crypto.RandomScalar(rand, crypto.ScalarBits)
	if err != nil {
		return domain.ECCryptogram{}, fmt.Errorf("ecies ephemeral: %w", err)
	}
	w := pub.ScalarMult(k)
	z := curve.ScalarBaseMult(k)

	keka := deriveKeys(w)
	defer memzero.Zero(keka)

	c, t := aead.Seal(keka, m, keccak.CustomPublicEnc, keccak.CustomPublicAuth)
	return domain.ECCryptogram{Z: z, C: c, T: t}, nil
}

// Decrypt recovers the plaintext of cg with private scalar s and reports
// whether its tag matched.
func Decrypt(s *big.Int, cg domain.ECCryptogram) domain.Decrypted {
	w := cg.Z.ScalarMult(s)
	keka := deriveKeys(w)
	defer memzero.Zero(keka)

	m, ok := aead.Unseal(keka, cg.C, cg.T, keccak.CustomPublicEnc, keccak.CustomPublicAuth)
	return domain.Decrypted{Plaintext: m, TagValid: ok}
}

func deriveKeys(w curve.Point) []byte {
	return keccak.KMACXOF256(w.XBytes(), nil, aead.KeyBits, keccak.CustomPublic)
}
