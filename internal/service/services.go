// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/crypto"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
)

// Services bundles the provisioning flows behind their interfaces so the
// application layer receives one dependency.
type Services struct {
	RepoProvisioner
	FileSyncService
	SecretProvisioner
}

// NewServices wires the shipped service implementations onto the given
// adapter and sealer.
func NewServices(github adapter.GitHubAdapter, sealer crypto.Sealer, log *logger.Logger) *Services {
	return &Services{
		RepoProvisioner:   NewRepoProvisionService(github, log.GetChildLogger("provision")),
		FileSyncService:   NewFileSyncService(github, log.GetChildLogger("files")),
		SecretProvisioner: NewSecretProvisionService(github, sealer, log.GetChildLogger("secrets")),
	}
}
