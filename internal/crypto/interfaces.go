// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals secret values against the repository public key so
// plaintext never traverses the wire. It knows nothing about the network or
// the provider API; its single job is the sealed-box transform.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

import "github.com/MKhiriev/go-stream-setup/models"

// Sealer encrypts a plaintext so that only the holder of the matching
// private key (the provider's execution environment) can open it.
//
// Sealing is anonymous: the sender is not authenticated, an ephemeral key
// pair is generated internally per call. Output is therefore not
// deterministic: repeated calls with identical inputs yield different
// ciphertexts, and correctness is round-trip decryptability only.
type Sealer interface {
	// Seal encrypts plaintext against key and returns the ciphertext as
	// standard base64, ready for the provider secret-write request.
	// Returns [ErrKeyFormat] (wrapped) if the key material is malformed;
	// this is the only error the sealer can raise.
	Seal(key models.ActionsPublicKey, plaintext string) (string, error)
}
