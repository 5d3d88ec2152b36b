package keccak_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/sha3"

	"kmacrypt/internal/keccak"
)

func referenceCSHAKE(x []byte, outBytes int, n, s string) []byte {
	h := sha3.NewCShake256([]byte(n), []byte(s))
	_, _ = h.Write(x)
	out := make([]byte, outBytes)
	_, _ = h.Read(out)
	return out
}

func TestCSHAKE256_DegeneratesToSHAKE(t *testing.T) {
	for _, n := range []int{0, 5, 136, 400} {
		m := message(n)
		for _, l := range []int{0, 8, 512, 2000} {
			if !bytes.Equal(keccak.CSHAKE256(m, l, "", ""), keccak.SHAKE256(m, l)) {
				t.Fatalf("cSHAKE256(%d bytes, %d, \"\", \"\") != SHAKE256", n, l)
			}
		}
	}
}

func TestCSHAKE256_MatchesReference(t *testing.T) {
	cases := []struct{ n, s string }{
		{"", "Email Signature"},
		{"KMAC", ""},
		{"KMAC", "D"},
		{"KMAC", "My Tagged Application"},
		{"fn", string(bytes.Repeat([]byte("c"), 200))},
	}
	for _, c := range cases {
		for _, size := range []int{0, 4, 200, 1000} {
			m := message(size)
			want := referenceCSHAKE(m, 64, c.n, c.s)
			if got := keccak.CSHAKE256(m, 512, c.n, c.s); !bytes.Equal(got, want) {
				t.Fatalf("cSHAKE256(N=%q, S=%q, %d bytes) = %x, want %x", c.n, c.s, size, got, want)
			}
		}
	}
}

// kmacFraming builds bytepad(encode_string(K), 136) || X || right_encode(0).
func kmacFraming(k, x []byte) []byte {
	in := keccak.Bytepad(keccak.EncodeString(k), keccak.Rate)
	in = append(in, x...)
	return append(in, keccak.RightEncode(0)...)
}

func TestKMACXOF256_MatchesReference(t *testing.T) {
	keys := [][]byte{nil, []byte("pw"), message(32), message(200)}
	for _, k := range keys {
		for _, s := range []string{keccak.CustomHash, keccak.CustomTag, keccak.CustomSymEnc, ""} {
			x := message(77)
			want := referenceCSHAKE(kmacFraming(k, x), 128, "KMAC", s)
			if got := keccak.KMACXOF256(k, x, 1024, s); !bytes.Equal(got, want) {
				t.Fatalf("KMACXOF256(key %d bytes, S=%q) = %x, want %x", len(k), s, got, want)
			}
		}
	}
}

func TestKMACXOF256_EmptyHash(t *testing.T) {
	// Plain hash of the empty message.
	want := mustHex(t, "d714347493b4cf23af8bea77bf811ee75a99c4087b3329966a0952f57d087aba"+
		"d4a31831f05a815db330bee0e61be30dc78d4bdcc57f0ce5515a98a53e73505d")
	got := keccak.KMACXOF256(nil, nil, 512, keccak.CustomHash)
	if !bytes.Equal(got, want) {
		t.Fatalf("KMACXOF256(\"\", \"\", 512, D) = %x, want %x", got, want)
	}
	if ref := referenceCSHAKE(kmacFraming(nil, nil), 64, "KMAC", "D"); !bytes.Equal(got, ref) {
		t.Fatalf("KMACXOF256(\"\", \"\", 512, D) = %x, framed cSHAKE256 = %x", got, ref)
	}
}

// NIST SP 800-185 KMACXOF256 sample #4.
func TestKMACXOF256_NISTSample4(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = 0x40 + byte(i)
	}
	want := mustHex(t, "1755133f1534752aad0748f2c706fb5c784512cab835cd15676b16c0c6647fa9"+
		"6faa7af634a0bf8ff6df39374fa00fad9a39e322a7c92065a64eb1fb0801eb2b")
	got := keccak.KMACXOF256(key, []byte{0x00, 0x01, 0x02, 0x03}, 512, "My Tagged Application")
	if !bytes.Equal(got, want) {
		t.Fatalf("KMACXOF256 sample #4 = %x, want %x", got, want)
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestKMACXOF256_DomainSeparation(t *testing.T) {
	m := []byte("message")
	a := keccak.KMACXOF256([]byte("k"), m, 512, keccak.CustomSymEnc)
	b := keccak.KMACXOF256([]byte("k"), m, 512, keccak.CustomSymAuth)
	c := keccak.KMACXOF256([]byte("j"), m, 512, keccak.CustomSymEnc)
	if bytes.Equal(a, b) || bytes.Equal(a, c) {
		t.Fatal("KMACXOF256 outputs collide across keys or customizations")
	}
}
