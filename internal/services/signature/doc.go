// Package signature signs messages with a passphrase-derived private key and
// verifies (h, z) signatures against a stored public key.
package signature
