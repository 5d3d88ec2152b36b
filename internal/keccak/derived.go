package keccak

// Customization strings for KMACXOF256.
const (
	CustomHash       = "D"
	CustomTag        = "T"
	CustomSymmetric  = "S"
	CustomSymEnc     = "SKE"
	CustomSymAuth    = "SKA"
	CustomPublic     = "PK"
	CustomPublicEnc  = "PKE"
	CustomPublicAuth = "PKA"
	CustomSecretKey  = "SK"
	CustomNonce      = "N"
)

const kmacName = "KMAC"

// CSHAKE256 returns l bits of cSHAKE256 over x with function name n and
// customization s. With both n and s empty it is SHAKE256.
func CSHAKE256(x []byte, l int, n, s string) []byte {
	if n == "" && s == "" {
		return SHAKE256(x, l)
	}
	prefix := EncodeString([]byte(n))
	prefix = append(prefix, EncodeString([]byte(s))...)

	in := Bytepad(prefix, Rate)
	in = append(in, x...)
	return Keccak(in, dsCSHAKE, l)
}

// KMACXOF256 returns l bits of KMAC with arbitrary-length output, keyed by k,
// over x, with customization s.
func KMACXOF256(k, x []byte, l int, s string) []byte {
	in := Bytepad(EncodeString(k), Rate)
	in = append(in, x...)
	in = append(in, RightEncode(0)...)
	return CSHAKE256(in, l, kmacName, s)
}
