package codec

import (
	"errors"

	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/crypto"
	"github.com/MKhiriev/ether-notes/internal/wallet"
)

var (
	// ErrEncryptionUnavailable is returned when a private note cannot be
	// encrypted, usually because the wallet would not hand out its public
	// key. Encode never falls back to plaintext.
	ErrEncryptionUnavailable = errors.New("encryption unavailable")

	// ErrDecryptionFailed is returned next to a PrivateLocked result when the
	// author's own note could not be opened: malformed payload, rejected
	// prompt or provider failure.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrWalletNotConnected is returned before any provider call.
	ErrWalletNotConnected = wallet.ErrWalletNotConnected

	// ErrChainCallFailed covers reads and writes the notes contract did not
	// complete. Raised by the chain client, listed here so note callers can
	// match the whole taxonomy from one package.
	ErrChainCallFailed = chain.ErrChainCallFailed

	// ErrMalformedPayload sits inside ErrDecryptionFailed when the stored
	// payload is not a valid hex JSON envelope.
	ErrMalformedPayload = crypto.ErrMalformedPayload
)
