package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmacrypt/internal/domain"
	"kmacrypt/internal/services/keypair"
	"kmacrypt/internal/services/signature"
	"kmacrypt/internal/store"
)

func setup(t *testing.T) *signature.Service {
	t.Helper()
	fs := store.NewFileStore(t.TempDir())
	keys := keypair.New(fs)
	_, _, err := keys.Generate("pw", "public.key", "private.key")
	require.NoError(t, err)
	_, _, err = keys.Generate("other", "other.key", "")
	require.NoError(t, err)
	return signature.New(keys, fs, fs)
}

func TestSignVerify(t *testing.T) {
	svc := setup(t)
	m := []byte("I owe you one")
	require.NoError(t, svc.Sign("pw", "", m, "signature.txt"))

	ok, err := svc.Verify("public.key", m, "signature.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify("public.key", []byte("I owe you two"), "signature.txt")
	require.NoError(t, err)
	assert.False(t, ok, "modified message must not verify")

	ok, err = svc.Verify("other.key", m, "signature.txt")
	require.NoError(t, err)
	assert.False(t, ok, "signature must not verify under another key")
}

func TestSign_FromPrivateKeyFile(t *testing.T) {
	svc := setup(t)
	m := []byte("loaded key")
	require.NoError(t, svc.Sign("pw", "private.key", m, "signature.txt"))

	ok, err := svc.Verify("public.key", m, "signature.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestErrors(t *testing.T) {
	svc := setup(t)
	assert.ErrorIs(t, svc.Sign("", "", []byte("m"), "s.txt"), domain.ErrPassphraseRequired)

	_, err := svc.Verify("public.key", []byte("m"), "missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Verify("missing.key", []byte("m"), "s.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
