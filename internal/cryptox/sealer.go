package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Sealer protects account passwords before they reach the store.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// NoopSealer stores values as they are.
type NoopSealer struct{}

func (NoopSealer) Seal(plaintext string) (string, error) { return plaintext, nil }
func (NoopSealer) Open(sealed string) (string, error)    { return sealed, nil }

// AESGCMSealer encrypts with AES-GCM and encodes the result as
// hex(nonce || ciphertext || tag).
type AESGCMSealer struct {
	gcm  cipher.AEAD
	rand io.Reader
}

// NewAESGCMSealer builds a sealer from a hex-encoded 16, 24 or 32 byte key.
func NewAESGCMSealer(hexKey string) (*AESGCMSealer, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid seal key hex: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMSealer{gcm: gcm, rand: rand.Reader}, nil
}

func (s *AESGCMSealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(s.rand, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := s.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

func (s *AESGCMSealer) Open(sealed string) (string, error) {
	buf, err := hex.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(buf) < nonceSize {
		return "", errors.New("sealed value too short")
	}

	nonce, ciphertext := buf[:nonceSize], buf[nonceSize:]
	plain, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plain), nil
}

// NewSealer returns an AESGCMSealer for a non-empty key and a NoopSealer
// otherwise.
func NewSealer(hexKey string) (Sealer, error) {
	if hexKey == "" {
		return NoopSealer{}, nil
	}
	return NewAESGCMSealer(hexKey)
}
