// Package asymmetric encrypts messages to an Ed448-Goldilocks public key and
// decrypts them with the matching private scalar.
//
// Each cryptogram carries the ephemeral point Z = k*G; the shared secret is the
// x coordinate of k*V = s*Z.
package asymmetric
