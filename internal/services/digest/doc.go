// Package digest computes plain KMAC hashes and passphrase-keyed tags of messages.
package digest
