package types

import (
	"math/big"

	"kmacrypt/internal/curve"
)

// PublicKey is an Ed448-Goldilocks point V = s*G.
type PublicKey = curve.Point

// KeyPair is a passphrase-derived key pair.
type KeyPair struct {
	Private *big.Int
	Public  PublicKey
}
