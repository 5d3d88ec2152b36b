// Package keypair derives Ed448-Goldilocks key pairs from passphrases and
// persists them through a domain.KeyStore.
//
// The private scalar is s = 4 * KMACXOF256(pw, "", 512, "SK"), so the same
// passphrase always yields the same key pair. The public key is written in
// the clear; the private scalar is written encrypted under the passphrase.
package keypair
