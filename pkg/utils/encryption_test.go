package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestKey(t *testing.T) {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(key))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	setTestKey(t)

	ciphertext, err := Encrypt("recovery@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "recovery@example.com", ciphertext)

	plaintext, err := Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "recovery@example.com", plaintext)
}

func TestEncryptEmptyStringIsPassthrough(t *testing.T) {
	setTestKey(t)

	ciphertext, err := Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, ciphertext)

	plaintext, err := Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	setTestKey(t)

	ciphertext, err := Encrypt("recovery@example.com")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	_, err = Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)
}

func TestGetEncryptionKeyValidation(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")
	_, err := GetEncryptionKey()
	assert.Error(t, err)

	t.Setenv("ENCRYPTION_KEY", "not-base64!!!")
	_, err = GetEncryptionKey()
	assert.Error(t, err)

	t.Setenv("ENCRYPTION_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
	_, err = GetEncryptionKey()
	assert.Error(t, err)
}
