// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the go-stream-setup configuration from layered
// sources: environment variables, CLI flags, an optional TOML file, the
// legacy six-line setup file, and built-in defaults. Earlier sources win;
// merging is performed with mergo and the result is validated before use.
package config
