// Package schnorr implements Schnorr-style signatures over Ed448-Goldilocks
// with KMACXOF256 as the hash.
//
// Sign(s, m):
//
//	k = 4 * KMACXOF256(s, m, 512, "N")
//	U = k*G
//	h = KMACXOF256(x(U), m, 512, "T")
//	z = (k - h*s) mod r
//
// Verify(V, m, (h, z)) recomputes U' = z*G + h*V and accepts iff
// KMACXOF256(x(U'), m, 512, "T") equals h. Nonces are deterministic, so no
// randomness is needed to sign.
package schnorr
