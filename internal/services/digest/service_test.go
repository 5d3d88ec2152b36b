package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kmacrypt/internal/keccak"
	"kmacrypt/internal/services/digest"
)

func TestHash(t *testing.T) {
	svc := digest.New()
	h := svc.Hash([]byte("hello"))
	assert.Len(t, h, 64)
	assert.Equal(t, keccak.KMACXOF256(nil, []byte("hello"), 512, "D"), h)
	assert.NotEqual(t, h, svc.Hash([]byte("hellp")))
	assert.Len(t, svc.Hash(nil), 64)
}

func TestTag(t *testing.T) {
	svc := digest.New()
	a := svc.Tag("pw", []byte("hello"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, svc.Tag("pw", []byte("hello")))
	assert.NotEqual(t, a, svc.Tag("pw2", []byte("hello")))
	assert.NotEqual(t, a, svc.Hash([]byte("hello")))
}
