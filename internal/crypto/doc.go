// Package crypto exposes the key material helpers used by kmacrypt.
//
// Contents
//
//   - Passphrase-derived Ed448-Goldilocks key pairs (DeriveKeyPair,
//     DerivePrivateKey, KeyPairFromPrivate)
//   - Secure randomness for nonces and ephemeral scalars (RandomBits,
//     RandomScalar)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Private scalars are returned as *big.Int values owned by the caller.
// Nothing here is constant time.
package crypto
