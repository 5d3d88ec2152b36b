package types

import "math/big"

// Signature is a Schnorr signature: challenge H and response Z.
type Signature struct {
	H *big.Int
	Z *big.Int
}
