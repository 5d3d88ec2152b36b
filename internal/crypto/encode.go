package crypto

import "encoding/hex"

// Hex returns the lowercase hex encoding of b.
func Hex(b []byte) string { return hex.EncodeToString(b) }
