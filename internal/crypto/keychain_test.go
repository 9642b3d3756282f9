package crypto

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}
	s2, err := svc.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}

	if len(s1) != 16 || len(s2) != 16 {
		t.Fatalf("salt lengths = %d/%d, want 16", len(s1), len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateKEK_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.GenerateKEK("correct horse battery staple", salt)
	k2 := svc.GenerateKEK("correct horse battery staple", salt)

	if len(k1) != 32 {
		t.Fatalf("KEK length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same passphrase+salt")
	}
}

func TestGenerateKEK_DifferentSaltProducesDifferentKEK(t *testing.T) {
	svc := NewKeyChainService()

	k1 := svc.GenerateKEK("same", bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.GenerateKEK("same", bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to differ for different salts")
	}
}

func TestSealOpenKey_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()

	secret := bytes.Repeat([]byte{0x42}, 32)
	kek := svc.GenerateKEK("pass", bytes.Repeat([]byte{0x07}, 16))

	sealed, err := svc.SealKey(secret, kek)
	if err != nil {
		t.Fatalf("SealKey error: %v", err)
	}
	if bytes.Contains(sealed, secret) {
		t.Fatalf("sealed blob must not contain the plain secret")
	}

	opened, err := svc.OpenKey(sealed, kek)
	if err != nil {
		t.Fatalf("OpenKey error: %v", err)
	}
	if !bytes.Equal(opened, secret) {
		t.Fatalf("opened secret mismatch")
	}
}

func TestOpenKey_WrongKEK(t *testing.T) {
	svc := NewKeyChainService()

	salt := bytes.Repeat([]byte{0x07}, 16)
	sealed, err := svc.SealKey([]byte("secret"), svc.GenerateKEK("right", salt))
	if err != nil {
		t.Fatalf("SealKey error: %v", err)
	}

	_, err = svc.OpenKey(sealed, svc.GenerateKEK("wrong", salt))
	if !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestOpenKey_TooShort(t *testing.T) {
	svc := NewKeyChainService()

	_, err := svc.OpenKey([]byte{1, 2, 3}, bytes.Repeat([]byte{1}, 32))
	if !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("err = %v, want ErrCiphertextTooShort", err)
	}
}

func TestKeyFile_SaveLoad(t *testing.T) {
	svc := NewKeyChainService()
	path := filepath.Join(t.TempDir(), "keys", "wallet.json")

	if KeyFileExists(path) {
		t.Fatalf("key file must not exist yet")
	}

	secret := bytes.Repeat([]byte{0x11}, 32)
	if err := SaveKeyFile(svc, path, "0xabc", secret, "hunter2"); err != nil {
		t.Fatalf("SaveKeyFile error: %v", err)
	}
	if !KeyFileExists(path) {
		t.Fatalf("key file must exist after save")
	}

	got, kf, err := LoadKeyFile(svc, path, "hunter2")
	if err != nil {
		t.Fatalf("LoadKeyFile error: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Fatalf("secret mismatch")
	}
	if kf.Address != "0xabc" {
		t.Fatalf("address = %q, want 0xabc", kf.Address)
	}

	if _, _, err = LoadKeyFile(svc, path, "nope"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("err = %v, want ErrWrongPassphrase", err)
	}
}
