package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

var ErrMalformedCiphertext error = errors.New("malformed ciphertext")

// KeyStore encrypts and decrypts wallet secret keys with AES-256-GCM. The
// cipher key is derived once with scrypt from the configured secret.
// Decrypted material is handed out as a byte slice so callers can zero it.
type KeyStore struct {
	aead cipher.AEAD
}

func New(secret, salt string) (*KeyStore, error) {
	key, err := scrypt.Key([]byte(secret), []byte(salt), 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("derive cipher key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init aes cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return &KeyStore{
		aead: aead,
	}, nil
}

func (k *KeyStore) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := k.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (k *KeyStore) Decrypt(ciphertext string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	if len(raw) < k.aead.NonceSize() {
		return nil, ErrMalformedCiphertext
	}

	nonce, sealed := raw[:k.aead.NonceSize()], raw[k.aead.NonceSize():]
	plaintext, err := k.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	return plaintext, nil
}

// Zero wipes decrypted key material. Call it as soon as the key has been used.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
