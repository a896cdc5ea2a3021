package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
)

const encryptionKeyLength = 32

func keyFromEnv(name string) ([]byte, error) {
	key := os.Getenv(name)
	if len(key) != encryptionKeyLength {
		return nil, fmt.Errorf("%s must be exactly %d characters", name, encryptionKeyLength)
	}
	return []byte(key), nil
}

// Encrypt seals plaintext with AES-GCM under the current data key and
// returns a base64 encoded ciphertext with the nonce prepended.
func Encrypt(plaintext []byte) (string, error) {
	key, err := keyFromEnv("DATA_ENCRYPTION_KEY")
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func open(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	return gcm.Open(nil, ciphertext[:nonceSize], ciphertext[nonceSize:], nil)
}

// Decrypt reverses Encrypt. It tries the current data key first and falls
// back to DATA_ENCRYPTION_KEY_PREVIOUS, so rotating the key does not orphan
// rows sealed under the old one.
func Decrypt(cryptoText string) ([]byte, error) {
	key, err := keyFromEnv("DATA_ENCRYPTION_KEY")
	if err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cryptoText)
	if err != nil {
		return nil, err
	}

	plaintext, err := open(key, ciphertext)
	if err == nil {
		return plaintext, nil
	}

	if previous, prevErr := keyFromEnv("DATA_ENCRYPTION_KEY_PREVIOUS"); prevErr == nil {
		if plaintext, fallbackErr := open(previous, ciphertext); fallbackErr == nil {
			return plaintext, nil
		}
	}

	return nil, err
}
