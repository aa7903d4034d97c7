// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/client-registry/models"
)

// Field names accepted by [ClientValidator.Validate].
const (
	// FieldID requires a positive id, e.g. before an edit.
	FieldID = "id"

	FieldName        = "name"
	FieldEmail       = "email"
	FieldExternalRef = "external_ref"

	// FieldUsername applies to remote users only.
	FieldUsername = "username"
)

// ClientValidator validates [models.Client] and [models.RemoteUser] values.
// Text fields must contain something other than whitespace; the email is
// not checked any further.
type ClientValidator struct {
}

// NewClientValidator constructs a ClientValidator.
func NewClientValidator() Validator {
	return &ClientValidator{}
}

// Validate checks obj. Without fields a client is checked for name, email
// and external_ref, a remote user for name, email and username. Returns
// ErrUnsupportedType for any other type.
func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case models.RemoteUser:
		return v.validateRemoteUser(ctx, value, fields...)
	case *models.RemoteUser:
		return v.validateRemoteUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateClient(_ context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldExternalRef}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if client.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if isBlank(client.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if isBlank(client.Email) {
				return ErrEmptyEmail
			}
		case FieldExternalRef:
			if isBlank(client.ExternalRef) {
				return ErrEmptyExternalRef
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClientValidator) validateRemoteUser(_ context.Context, user models.RemoteUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if isBlank(user.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if isBlank(user.Email) {
				return ErrEmptyEmail
			}
		case FieldUsername:
			if isBlank(user.Username) {
				return ErrEmptyUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
