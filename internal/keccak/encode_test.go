package keccak_test

import (
	"bytes"
	"testing"

	"kmacrypt/internal/keccak"
)

func TestLeftEncode(t *testing.T) {
	cases := []struct {
		in   uint64
		want []byte
	}{
		{0, []byte{0x01, 0x00}},
		{8, []byte{0x01, 0x08}},
		{136, []byte{0x01, 0x88}},
		{256, []byte{0x02, 0x01, 0x00}},
		{1 << 32, []byte{0x05, 0x01, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, c := range cases {
		if got := keccak.LeftEncode(c.in); !bytes.Equal(got, c.want) {
			t.Fatalf("LeftEncode(%d) = %x, want %x", c.in, got, c.want)
		}
	}
}

func TestRightEncode(t *testing.T) {
	cases := []struct {
		in   uint64
		want []byte
	}{
		{0, []byte{0x00, 0x01}},
		{512, []byte{0x02, 0x00, 0x02}},
		{0xffff, []byte{0xff, 0xff, 0x02}},
	}
	for _, c := range cases {
		if got := keccak.RightEncode(c.in); !bytes.Equal(got, c.want) {
			t.Fatalf("RightEncode(%d) = %x, want %x", c.in, got, c.want)
		}
	}
}

func TestEncodeString(t *testing.T) {
	if got := keccak.EncodeString(nil); !bytes.Equal(got, keccak.LeftEncode(0)) {
		t.Fatalf("EncodeString(empty) = %x, want %x", got, keccak.LeftEncode(0))
	}
	want := []byte{0x01, 0x20, 'K', 'M', 'A', 'C'}
	if got := keccak.EncodeString([]byte("KMAC")); !bytes.Equal(got, want) {
		t.Fatalf("EncodeString(KMAC) = %x, want %x", got, want)
	}
}

func TestBytepad(t *testing.T) {
	for _, n := range []int{0, 1, 133, 134, 135, 136, 300} {
		x := bytes.Repeat([]byte{0xaa}, n)
		got := keccak.Bytepad(x, keccak.Rate)
		if len(got) == 0 || len(got)%keccak.Rate != 0 {
			t.Fatalf("len(Bytepad(%d bytes)) = %d, not a positive multiple of %d", n, len(got), keccak.Rate)
		}
		prefix := append(keccak.LeftEncode(keccak.Rate), x...)
		if !bytes.Equal(got[:len(prefix)], prefix) {
			t.Fatalf("Bytepad(%d bytes) prefix mismatch", n)
		}
		for _, b := range got[len(prefix):] {
			if b != 0 {
				t.Fatalf("Bytepad(%d bytes) has non-zero padding", n)
			}
		}
	}
}

func TestPad101(t *testing.T) {
	for _, m := range []int{0, 1, 134, 135, 136, 137, 271} {
		p := keccak.Pad101(keccak.Rate, m, 0x1f)
		if len(p) == 0 || (m+len(p))%keccak.Rate != 0 {
			t.Fatalf("Pad101(m=%d) has length %d", m, len(p))
		}
		if p[0]&0x1f != 0x1f {
			t.Fatalf("Pad101(m=%d) leading byte %#x lost the suffix", m, p[0])
		}
		if p[len(p)-1]&0x80 == 0 {
			t.Fatalf("Pad101(m=%d) trailing byte %#x has no final bit", m, p[len(p)-1])
		}
	}
	if p := keccak.Pad101(keccak.Rate, 135, 0x06); len(p) != 1 || p[0] != 0x86 {
		t.Fatalf("single-byte pad = %x, want 86", p)
	}
}

func TestTrunc(t *testing.T) {
	x := []byte{1, 2, 3, 4, 5}
	for i := 0; i <= len(x); i++ {
		got := keccak.Trunc(x, i)
		if len(got) != i || !bytes.Equal(got, x[:i]) {
			t.Fatalf("Trunc(x, %d) = %v", i, got)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Trunc beyond the buffer did not panic")
		}
	}()
	keccak.Trunc(x, len(x)+1)
}
