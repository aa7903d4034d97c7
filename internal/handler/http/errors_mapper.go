// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidUserID: http.StatusBadRequest,
	ErrInvalidJSON:   http.StatusBadRequest,

	validators.ErrInvalidID:     http.StatusBadRequest,
	validators.ErrEmptyName:     http.StatusBadRequest,
	validators.ErrEmptyEmail:    http.StatusBadRequest,
	validators.ErrEmptyUsername: http.StatusBadRequest,

	store.ErrUserNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
