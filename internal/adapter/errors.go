// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from HTTP statuses by mapHTTPError. Callers match
// them with [errors.Is]; the wrapped message keeps the provider response
// body for diagnostics.
var (
	// ErrTransport marks a network-level fault (timeout, DNS, TLS) where
	// no HTTP status was obtained at all.
	ErrTransport = errors.New("transport error")

	// ErrBadRequest corresponds to HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized corresponds to HTTP 401: the bearer token was
	// rejected by the provider.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden corresponds to HTTP 403 (including rate limiting).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound corresponds to HTTP 404: the probed resource does not
	// exist. For repository and content probes this is an expected branch,
	// not a failure.
	ErrNotFound = errors.New("not found")

	// ErrConflict corresponds to HTTP 409: the revision marker sent with
	// a content write no longer matches the remote content.
	ErrConflict = errors.New("conflict")

	// ErrUnprocessable corresponds to HTTP 422, e.g. creating a
	// repository whose name is already taken.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrInternalServerError corresponds to HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
