package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Decodes(t *testing.T) {
	out, err := Decode("base64", []byte("aGVsbG8="))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestRot13IsSelfInverse(t *testing.T) {
	once, err := Decode("rot13", []byte("hello"))
	require.NoError(t, err)
	twice, err := Decode("rot13", once)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(twice))
}

func TestHexAndBase16AreAliases(t *testing.T) {
	a, err := Decode("hex", []byte("68656c6c6f"))
	require.NoError(t, err)
	b, err := Decode("base16", []byte("68656c6c6f"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "hello", string(a))
}

func TestUnknownCodecIsAnErrorNotAPanic(t *testing.T) {
	_, err := Decode("not-a-real-codec", []byte("x"))
	assert.Error(t, err)
}

func TestMalformedInputReturnsErrorNotPanic(t *testing.T) {
	_, err := Decode("base64", []byte("not valid base64!!"))
	assert.Error(t, err)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	_, ok := Lookup("BASE64")
	assert.True(t, ok)
	_, ok = Lookup("Rot13")
	assert.True(t, ok)
}

func TestLatin1DecodesHighBytes(t *testing.T) {
	out, err := Decode("latin-1", []byte{0xe9}) // é in Latin-1
	require.NoError(t, err)
	assert.Equal(t, "é", string(out))
}
