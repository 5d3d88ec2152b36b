package store_test

import (
	"bytes"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"kmacrypt/internal/crypto"
	"kmacrypt/internal/curve"
	"kmacrypt/internal/domain"
	"kmacrypt/internal/store"
)

func TestCryptogram_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var cs domain.CryptogramStore = store.NewFileStore(home)

	for _, c := range []domain.Cryptogram{
		{Z: bytes.Repeat([]byte{1}, 64), C: []byte("ciphertext"), T: bytes.Repeat([]byte{2}, 64)},
		{Z: bytes.Repeat([]byte{3}, 64), C: nil, T: bytes.Repeat([]byte{4}, 64)},
	} {
		if err := cs.SaveCryptogram("cryptogram.txt", c); err != nil {
			t.Fatalf("save cryptogram: %v", err)
		}
		got, err := cs.LoadCryptogram("cryptogram.txt")
		if err != nil {
			t.Fatalf("load cryptogram: %v", err)
		}
		if !bytes.Equal(got.Z, c.Z) || !bytes.Equal(got.C, c.C) || !bytes.Equal(got.T, c.T) {
			t.Fatalf("mismatch after load: %+v", got)
		}
	}

	raw, err := os.ReadFile(filepath.Join(home, "cryptogram.txt"))
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	if n := bytes.Count(raw, []byte("\n")); n != 3 {
		t.Fatalf("want 3 lines, got %d", n)
	}
}

func TestECCryptogram_SaveLoad_OK(t *testing.T) {
	fs := store.NewFileStore(t.TempDir())
	c := domain.ECCryptogram{Z: curve.G.Double(), C: []byte{0xde, 0xad}, T: []byte{0xbe, 0xef}}

	if err := fs.SaveECCryptogram("ec.txt", c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := fs.LoadECCryptogram("ec.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Z.Equal(c.Z) || !bytes.Equal(got.C, c.C) || !bytes.Equal(got.T, c.T) {
		t.Fatalf("mismatch after load")
	}
}

func TestPublicKey_SaveLoad_OK(t *testing.T) {
	var ks domain.KeyStore = store.NewFileStore(t.TempDir())
	if err := ks.SavePublicKey("pub.txt", curve.G); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := ks.LoadPublicKey("pub.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(curve.G) {
		t.Fatalf("got %s, want G", got)
	}
}

func TestPublicKey_OffCurve_Malformed(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "pub.txt"), []byte("1\n1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := store.NewFileStore(home).LoadPublicKey("pub.txt")
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("want ErrMalformedRecord, got %v", err)
	}
}

func TestPrivateKey_SaveLoad_OK(t *testing.T) {
	ks := store.NewFileStore(t.TempDir())
	kp := crypto.DeriveKeyPair([]byte("pass"))

	if err := ks.SavePrivateKey("priv.txt", "pass", kp.Private); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := ks.LoadPrivateKey("priv.txt", "pass")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Cmp(kp.Private) != 0 {
		t.Fatalf("private key mismatch")
	}
}

func TestPrivateKey_WrongPassphrase_Fails(t *testing.T) {
	ks := store.NewFileStore(t.TempDir())
	if err := ks.SavePrivateKey("priv.txt", "correct", big.NewInt(12345)); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err := ks.LoadPrivateKey("priv.txt", "wrong")
	if !errors.Is(err, domain.ErrTagMismatch) {
		t.Fatalf("expected tag mismatch with wrong passphrase, got %v", err)
	}
}

func TestSignature_SaveLoad_OK(t *testing.T) {
	ss := store.NewFileStore(t.TempDir())
	sig := domain.Signature{H: big.NewInt(42), Z: new(big.Int).Lsh(big.NewInt(1), 500)}
	if err := ss.SaveSignature("sig.txt", sig); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := ss.LoadSignature("sig.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.H.Cmp(sig.H) != 0 || got.Z.Cmp(sig.Z) != 0 {
		t.Fatalf("signature mismatch")
	}
}

func TestMissingFile_NotFound(t *testing.T) {
	fs := store.NewFileStore(t.TempDir())
	if _, err := fs.ReadMessage("nope.txt"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ReadMessage: want ErrNotFound, got %v", err)
	}
	if _, err := fs.LoadCryptogram("nope.txt"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("LoadCryptogram: want ErrNotFound, got %v", err)
	}
	if _, err := fs.LoadPublicKey("nope.txt"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("LoadPublicKey: want ErrNotFound, got %v", err)
	}
}

func TestMalformedRecords(t *testing.T) {
	home := t.TempDir()
	fs := store.NewFileStore(home)
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(home, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	write("short.txt", "00\n11\n")
	if _, err := fs.LoadCryptogram("short.txt"); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("short cryptogram: got %v", err)
	}

	write("badhex.txt", "zz\n00\n00\n")
	if _, err := fs.LoadCryptogram("badhex.txt"); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("bad hex: got %v", err)
	}

	write("badsig.txt", "12\n-5\n")
	if _, err := fs.LoadSignature("badsig.txt"); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("negative z: got %v", err)
	}

	write("shortec.txt", "8\n")
	if _, err := fs.LoadECCryptogram("shortec.txt"); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("short ec cryptogram: got %v", err)
	}
}

func TestMessage_ReadWrite(t *testing.T) {
	home := t.TempDir()
	fs := store.NewFileStore(home)
	if err := fs.WriteMessage("out.txt", []byte("hello\nworld")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := fs.ReadMessage(filepath.Join(home, "out.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "hello\nworld" {
		t.Fatalf("got %q", got)
	}
}

func TestWrite_MissingDirectory(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "missing"))
	if err := fs.WriteMessage("out.txt", []byte("x")); !errors.Is(err, domain.ErrWrite) {
		t.Fatalf("want ErrWrite, got %v", err)
	}
}
