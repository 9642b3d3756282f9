package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService защищает секретный ключ локального кошелька на диске.
// Он не знает ничего о сети, блокчейне или заметках.
//
// Схема работы:
//
//	Salt   = GenerateEncryptionSalt()          (Шаг 1)
//	KEK    = GenerateKEK(passphrase, salt)     (Шаг 2)
//	Sealed = SealKey(secret, KEK)              (Шаг 3)
//	secret = OpenKey(Sealed, KEK)              (при запуске клиента)
type KeyChainService interface {
	// GenerateEncryptionSalt генерирует случайную соль (16 байт / 128 бит).
	// Соль не является секретом и хранится в key-файле открыто.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateKEK выводит ключ шифрования из пароля и соли через Argon2id.
	// KEK существует только в памяти клиента.
	GenerateKEK(passphrase string, salt []byte) []byte

	// SealKey encrypts secret with KEK using AES-GCM.
	// The blob has the format nonce || ciphertext.
	SealKey(secret, KEK []byte) ([]byte, error)

	// OpenKey unwraps a blob produced by SealKey. A wrong KEK yields
	// ErrWrongPassphrase.
	OpenKey(sealed, KEK []byte) ([]byte, error)
}
