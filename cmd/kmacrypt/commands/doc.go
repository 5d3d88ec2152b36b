// Package commands defines the kmacrypt CLI and wires dependencies for subcommands.
//
// Commands (names are case-insensitive)
//
//   - hash         Print the KMAC hash of a message
//   - tag          Print the passphrase authentication tag of a message
//   - encrypt      Encrypt a message under the passphrase
//   - decrypt      Decrypt a symmetric cryptogram
//   - key          Derive a key pair from the passphrase and write it out
//   - ecencrypt    Encrypt a message to a public key
//   - ecdecrypt    Decrypt a public-key cryptogram
//   - sign         Sign a message
//   - verify       Verify a signature
//   - fingerprint  Print the fingerprint of a public key
//
// Commands that take a message read it from the named file, or one line
// from stdin when no file is given.
//
// # Implementation
//
// The root command loads configuration (defaults, <home>/config.toml, .env
// and KMACRYPT_* variables, then flags) and builds the app context before any
// subcommand runs.
package commands
