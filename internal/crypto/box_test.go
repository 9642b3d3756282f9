package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/ether-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret(b byte) [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = b + byte(i)
	}
	return s
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	secret := testSecret(1)
	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)

	for _, plain := range []string{"hello", "", "привет 👋", strings.Repeat("x", 200)} {
		payload, err := Encrypt(pub, plain)
		require.NoError(t, err)
		assert.Equal(t, models.EncryptionVersionX25519, payload.Version)

		got, err := Decrypt(payload, secret)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

func TestEncrypt_FreshNonceEachCall(t *testing.T) {
	pub, err := EncryptionPublicKey(testSecret(3))
	require.NoError(t, err)

	a, err := Encrypt(pub, "same")
	require.NoError(t, err)
	b, err := Encrypt(pub, "same")
	require.NoError(t, err)

	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
	assert.NotEqual(t, a.EphemPublicKey, b.EphemPublicKey)
}

func TestDecrypt_WrongKey(t *testing.T) {
	pub, err := EncryptionPublicKey(testSecret(1))
	require.NoError(t, err)

	payload, err := Encrypt(pub, "secret")
	require.NoError(t, err)

	_, err = Decrypt(payload, testSecret(9))
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestDecrypt_Tampered(t *testing.T) {
	secret := testSecret(1)
	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)

	payload, err := Encrypt(pub, "secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(payload.Ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF
	payload.Ciphertext = base64.StdEncoding.EncodeToString(raw)

	_, err = Decrypt(payload, secret)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestDecrypt_BadInput(t *testing.T) {
	secret := testSecret(1)
	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)
	good, err := Encrypt(pub, "x")
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(p *models.EncryptedPayload)
		wantErr error
	}{
		{"version", func(p *models.EncryptedPayload) { p.Version = "secp256k1" }, ErrUnsupportedVersion},
		{"nonce", func(p *models.EncryptedPayload) { p.Nonce = "AAAA" }, ErrMalformedPayload},
		{"ephem key", func(p *models.EncryptedPayload) { p.EphemPublicKey = "!!" }, ErrMalformedPayload},
		{"ciphertext", func(p *models.EncryptedPayload) { p.Ciphertext = "%%%" }, ErrMalformedPayload},
		{"short", func(p *models.EncryptedPayload) { p.Ciphertext = "AAAA" }, ErrCiphertextTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := good
			tt.mutate(&p)
			_, err := Decrypt(p, secret)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncrypt_InvalidPublicKey(t *testing.T) {
	_, err := Encrypt("not-base64!", "x")
	require.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = Encrypt(base64.StdEncoding.EncodeToString([]byte("short")), "x")
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestEncryptionPublicKey_Deterministic(t *testing.T) {
	a, err := EncryptionPublicKey(testSecret(5))
	require.NoError(t, err)
	b, err := EncryptionPublicKey(testSecret(5))
	require.NoError(t, err)
	c, err := EncryptionPublicKey(testSecret(6))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
