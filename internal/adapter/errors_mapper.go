// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Anything else becomes
// ErrNetwork joined with the status sentinel and the trimmed body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var statusErr error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr = ErrUnauthorized
	case http.StatusForbidden:
		statusErr = ErrForbidden
	case http.StatusNotFound:
		statusErr = ErrNotFound
	case http.StatusConflict:
		statusErr = ErrConflict
	case http.StatusInternalServerError:
		statusErr = ErrInternalServerError
	case http.StatusBadGateway:
		statusErr = ErrBadGateway
	case http.StatusServiceUnavailable:
		statusErr = ErrServiceUnavailable
	default:
		return fmt.Errorf("%w: %w: http %d: %s", ErrNetwork, ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %w: %s", ErrNetwork, statusErr, body)
}
