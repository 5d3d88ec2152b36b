// Package store provides file-based persistence for kmacrypt's artifacts.
//
// Every record is newline-separated text with one field per line: byte
// buffers as lowercase hex, integers in base 10. Writes go through a temp file
// and an atomic rename. All methods are concurrency-safe via internal locking.
//
// Records:
//   - Symmetric cryptogram: z, c, t
//   - Public key: x, y
//   - Private key: symmetric cryptogram of the scalar under the passphrase
//   - Asymmetric cryptogram: x(Z), y(Z), c, t
//   - Signature: h, z
package store
