// Package keccak implements the Keccak-p[1600,24] permutation, the KECCAK[512]
// sponge and the functions built on it: SHAKE256, cSHAKE256 and KMACXOF256.
//
// # Layout
//
//   - encode.go       SP 800-185 left/right encodings, bytepad, pad10*1, trunc
//   - permutation.go  theta, rho, pi, chi, iota over a flat 25-lane state
//   - sponge.go       absorb/squeeze with rate 1088 bits and capacity 512 bits
//   - derived.go      cSHAKE256 and KMACXOF256
//
// # Bit order
//
// All inputs and outputs are byte buffers. Bit i of a buffer is bit i%8 of
// byte i/8, counting from the least significant bit, which is the bit-string
// mapping of FIPS 202 Appendix B.1. Output lengths are given in bits and must
// be whole bytes.
//
// Every call allocates its own state, so functions are safe for concurrent use.
package keccak
