package types

import "kmacrypt/internal/curve"

// Cryptogram is a symmetric cryptogram: nonce Z, ciphertext C and tag T.
type Cryptogram struct {
	Z []byte
	C []byte
	T []byte
}

// ECCryptogram is an asymmetric cryptogram: ephemeral point Z, ciphertext C
// and tag T.
type ECCryptogram struct {
	Z curve.Point
	C []byte
	T []byte
}
