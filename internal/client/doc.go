// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client drives a complete setup run as a sequential state
// machine:
//
//	Init -> FilesChecked -> ConfigLoaded -> TokenVerified ->
//	RepoProvisioned -> FilesUploaded -> SecretsProvisioned -> Done
//
// Every transition has a guard; the first guard that rejects halts the
// run in the ".Failed" form of the state it was leaving (a files check
// failing out of Init halts in "Init.Failed") and nothing already
// provisioned is rolled back. Local checks (tracked files, run inputs) run before the
// first network call so a misconfigured run fails before touching the
// provider.
package client
