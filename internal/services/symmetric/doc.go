// Package symmetric encrypts messages under a passphrase and persists the
// resulting (z, c, t) cryptograms.
package symmetric
