// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stream-setup/models"
	"golang.org/x/crypto/nacl/box"
)

// ErrKeyFormat is returned when the provider public key cannot be decoded
// into 32 raw Curve25519 bytes.
var ErrKeyFormat = errors.New("malformed provider public key")

// publicKeySize is the raw Curve25519 public key length NaCl expects.
const publicKeySize = 32

// sealedBoxSealer is the NaCl implementation of [Sealer]. It is stateless;
// all key material arrives per call.
type sealedBoxSealer struct{}

// NewSealedBoxSealer constructs a [Sealer] backed by NaCl anonymous sealed
// boxes (the scheme GitHub Actions secrets require: ephemeral sender key,
// recipient public key only).
func NewSealedBoxSealer() Sealer {
	return &sealedBoxSealer{}
}

// Seal implements [Sealer]. The provider key arrives base64-encoded; it is
// decoded, length-checked, and used as the recipient key of
// box.SealAnonymous with the OS CSPRNG. The ciphertext is re-encoded as
// standard base64 for the secret-write request body.
func (s *sealedBoxSealer) Seal(key models.ActionsPublicKey, plaintext string) (string, error) {
	recipientKey, err := decodePublicKey(key.Key)
	if err != nil {
		return "", err
	}

	sealed, err := box.SealAnonymous(nil, []byte(plaintext), recipientKey, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("seal value: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func decodePublicKey(encoded string) (*[publicKeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
	}
	if len(raw) != publicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrKeyFormat, len(raw), publicKeySize)
	}

	var pk [publicKeySize]byte
	copy(pk[:], raw)
	return &pk, nil
}
