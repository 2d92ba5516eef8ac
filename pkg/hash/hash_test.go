package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/pkg/hash"
)

func TestMakeAndCheck(t *testing.T) {
	digest, err := hash.Make("butter-croissant")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.NotEqual(t, "butter-croissant", digest, "digest must not store plaintext")
	assert.True(t, hash.Check("butter-croissant", digest))
	assert.False(t, hash.Check("wrong-password", digest))
}

func TestDigestsAreSalted(t *testing.T) {
	a, err := hash.Make("same-password")
	require.NoError(t, err)
	b, err := hash.Make("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two digests of the same password must differ")
	assert.True(t, hash.Check("same-password", a))
	assert.True(t, hash.Check("same-password", b))
}

func TestMalformedDigestFailsClosed(t *testing.T) {
	assert.False(t, hash.Check("anything", ""))
	assert.False(t, hash.Check("anything", "not-a-bcrypt-digest"))
}
