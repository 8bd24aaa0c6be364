// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/crypto"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/models"
)

// SecretProvisionService is the [SecretProvisioner] implementation that
// seals values with the injected [crypto.Sealer] and stores them via the
// GitHub adapter.
type SecretProvisionService struct {
	github adapter.GitHubAdapter
	sealer crypto.Sealer

	logger *logger.Logger
}

// NewSecretProvisionService returns a [SecretProvisioner].
func NewSecretProvisionService(github adapter.GitHubAdapter, sealer crypto.Sealer, log *logger.Logger) *SecretProvisionService {
	return &SecretProvisionService{github: github, sealer: sealer, logger: log}
}

// ProvisionAll implements [SecretProvisioner]. The repository public key is
// fetched exactly once and reused for every slot. Slots are written in
// sorted name order so runs are deterministic. A failing slot is recorded
// and skipped over; an unusable key aborts the whole step, since the key is
// shared and nothing can be sealed without it: either the fetch failed, or
// the key material turned out malformed on first use.
func (s *SecretProvisionService) ProvisionAll(ctx context.Context, ref models.RepositoryRef, secrets map[string]string) ([]models.SecretResult, error) {
	key, err := s.github.GetActionsPublicKey(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPublicKeyUnavailable, err)
	}

	names := make([]string, 0, len(secrets))
	for name := range secrets {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]models.SecretResult, 0, len(names))
	for _, name := range names {
		result, err := s.provisionOne(ctx, ref, key, name, secrets[name])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *SecretProvisionService) provisionOne(ctx context.Context, ref models.RepositoryRef, key models.ActionsPublicKey, name, value string) (models.SecretResult, error) {
	sealed, err := s.sealer.Seal(key, value)
	if err != nil {
		// A malformed key condemns every slot, not just this one.
		if errors.Is(err, crypto.ErrKeyFormat) {
			return models.SecretResult{}, fmt.Errorf("%w: %w", ErrPublicKeyUnavailable, err)
		}
		s.logger.Error().Err(err).Str("secret", name).Msg("sealing failed")
		return models.SecretResult{Name: name, Err: fmt.Sprintf("seal: %v", err)}, nil
	}

	err = s.github.PutActionsSecret(ctx, ref, name, models.SecretWriteRequest{
		EncryptedValue: sealed,
		KeyID:          key.KeyID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("secret", name).Msg("secret write failed")
		return models.SecretResult{Name: name, Err: fmt.Sprintf("store: %v", err)}, nil
	}

	s.logger.Info().Str("secret", name).Msg("secret provisioned")
	return models.SecretResult{Name: name, OK: true}, nil
}
