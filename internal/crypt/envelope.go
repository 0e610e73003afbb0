// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Seal parameters. Unseal reads whatever the envelope declares, so older
// sealed files keep working if these ever change.
const (
	sealIterations = 600000
	sealKeyLength  = 32
	sealSaltLength = 16
)

// envelope is the sealed dataset wire format: a JSON document carrying the
// PBKDF2 parameters (base64 of a keyParams JSON doc) and the AES-256-GCM
// ciphertext (base64 of nonce||ciphertext).
type envelope struct {
	Meta struct {
		Key string `json:"key_provider.pbkdf2.plssctl"`
	} `json:"meta"`
	EncryptedData string `json:"encrypted_data"`
}

type keyParams struct {
	Salt       string `json:"salt"`
	Iterations int    `json:"iterations"`
	HashFunc   string `json:"hash_function"`
	KeyLength  int    `json:"key_length"`
}

// Seal encrypts plaintext into the .enc envelope format using the provided
// passphrase. Each call generates a fresh salt and nonce.
func Seal(plaintext []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, sealSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key(
		[]byte(passphrase),
		salt,
		sealIterations,
		sealKeyLength,
		sha512.New,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	ciphertext := aesGCM.Seal(nonce, nonce, plaintext, nil)

	params := keyParams{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Iterations: sealIterations,
		HashFunc:   "sha512",
		KeyLength:  sealKeyLength,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key params: %w", err)
	}

	var env envelope
	env.Meta.Key = base64.StdEncoding.EncodeToString(paramsJSON)
	env.EncryptedData = base64.StdEncoding.EncodeToString(ciphertext)

	return json.Marshal(env)
}

// Unseal decrypts a sealed dataset envelope using the provided passphrase.
func Unseal(data []byte, passphrase string) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse envelope: %w", err)
	}

	// Decode key provider params
	paramsJSON, err := base64.StdEncoding.DecodeString(env.Meta.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key params: %w", err)
	}

	var params keyParams
	if err = json.Unmarshal(paramsJSON, &params); err != nil {
		return nil, fmt.Errorf("failed to parse key params: %w", err)
	}

	// Decode salt
	salt, err := base64.StdEncoding.DecodeString(params.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	// Generate key using the envelope's PBKDF2 parameters
	key := pbkdf2.Key(
		[]byte(passphrase),
		salt,
		params.Iterations,
		params.KeyLength,
		sha512.New,
	)

	// Decrypt the payload using the derived key
	return decrypt(env.EncryptedData, key)
}

func decrypt(encryptedData string, derivedKey []byte) ([]byte, error) {
	// Decode base64 data
	ciphertext, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	// Create cipher directly with derived key
	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Create GCM
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Extract nonce and ciphertext - no salt needed since key is already derived
	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf(
			"ciphertext too short: expected at least %d bytes, got %d",
			nonceSize,
			len(ciphertext),
		)
	}

	nonce := ciphertext[:nonceSize]
	encrypted := ciphertext[nonceSize:]

	// Decrypt
	plaintext, err := aesGCM.Open(nil, nonce, encrypted, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}
