// Package aead implements passphrase-based authenticated encryption built
// entirely on KMACXOF256.
//
// # Construction
//
// Encrypt draws a 512-bit nonce z and derives
//
//	ke || ka = KMACXOF256(z || pw, "", 1024, "S")
//
// The message is XORed with the keystream KMACXOF256(ke, "", |m|, "SKE") and
// authenticated with t = KMACXOF256(ka, m, 512, "SKA"). The cryptogram is
// (z, c, t).
//
// # Errors
//
// Decrypt always returns the recovered plaintext together with whether the
// tag matched. Open is the strict form and returns domain.ErrTagMismatch.
package aead
