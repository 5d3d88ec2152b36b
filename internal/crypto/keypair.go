package crypto

import (
	"math/big"

	"kmacrypt/internal/curve"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/keccak"
	"kmacrypt/internal/util/memzero"
)

// ScalarBits is the KMAC output length used for every derived scalar.
const ScalarBits = 512

// DeriveKeyPair computes s = 4 * KMACXOF256(pw, "", 512, "SK") and V = s*G.
func DeriveKeyPair(passphrase []byte) domain.KeyPair {
	s := DerivePrivateKey(passphrase)
	return domain.KeyPair{Private: s, Public: curve.ScalarBaseMult(s)}
}

// DerivePrivateKey returns the private scalar for passphrase.
func DerivePrivateKey(passphrase []byte) *big.Int {
	h := keccak.KMACXOF256(passphrase, nil, ScalarBits, keccak.CustomSecretKey)
	defer memzero.Zero(h)
	s := new(big.Int).SetBytes(h)
	return s.Lsh(s, 2)
}

// KeyPairFromPrivate rebuilds the key pair for a known private scalar.
func KeyPairFromPrivate(s *big.Int) domain.KeyPair {
	return domain.KeyPair{Private: new(big.Int).Set(s), Public: curve.ScalarBaseMult(s)}
}

// ScalarBytes returns the minimal big-endian encoding of s.
func ScalarBytes(s *big.Int) []byte {
	return s.Bytes()
}
