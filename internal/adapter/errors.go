// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNetwork covers every failure to get a 2xx answer from the remote
	// API: connection refused, DNS, timeout or an error status. For status
	// failures one of the status sentinels below is wrapped as well.
	ErrNetwork = errors.New("network error")

	// ErrDecode means the API answered 2xx but the body did not have the
	// expected shape.
	ErrDecode = errors.New("decode error")
)

// Status sentinels, mapped from the HTTP status code by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
