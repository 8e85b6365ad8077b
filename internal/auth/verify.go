// Package auth validates that an inbound webhook request was signed by
// Discord. Verification runs before any JSON parsing of the body: an
// attacker-controlled body is never deserialized until its authenticity is
// established.
package auth

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/composure-bot/composure/internal/domain"
)

// Verifier checks Ed25519 signatures against one application public key.
type Verifier struct {
	publicKey ed25519.PublicKey
}

// NewVerifier parses the hex-encoded application public key from the Discord
// developer portal.
func NewVerifier(publicKeyHex string) (*Verifier, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, domain.ErrInvalidSignature()
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, domain.ErrInvalidSignature()
	}
	return &Verifier{publicKey: ed25519.PublicKey(key)}, nil
}

// Verify checks the hex signature over timestamp || body. The message is the
// byte concatenation of the two inputs, no delimiter.
//
// Every failure is reported as the single invalid_signature kind: exposing
// whether the hex decode or the cryptographic check rejected the request
// would hand an attacker an oracle.
func (v *Verifier) Verify(signatureHex, timestamp string, body []byte) error {
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return domain.ErrInvalidSignature()
	}

	message := make([]byte, 0, len(timestamp)+len(body))
	message = append(message, timestamp...)
	message = append(message, body...)

	if !ed25519.Verify(v.publicKey, message, sig) {
		return domain.ErrInvalidSignature()
	}
	return nil
}
