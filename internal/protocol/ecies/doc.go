// Package ecies implements Diffie-Hellman style public-key encryption over
// Ed448-Goldilocks with KMACXOF256 as the key-derivation, keystream and MAC
// function.
//
// # Flows
//
// Encrypt (to public key V):
//  1. k = 4 * random(512), W = k*V, Z = k*G.
//  2. ke || ka = KMACXOF256(x(W), "", 1024, "PK").
//  3. c = KMACXOF256(ke, "", |m|, "PKE") XOR m, t = KMACXOF256(ka, m, 512, "PKA").
//
// Decrypt (with private scalar s):
//  1. W = s*Z, then the same derivation, keystream and tag comparison.
//
// x(W) is fed to KMAC as a 56-byte big-endian field element.
package ecies
