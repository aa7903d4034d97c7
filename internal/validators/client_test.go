// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/client-registry/models"
)

func validClient() models.Client {
	return models.Client{Name: "João Silva", Email: "joao@email.com", ExternalRef: "001"}
}

func TestNewClientValidator(t *testing.T) {
	v := NewClientValidator()
	require.NotNil(t, v)
	assert.IsType(t, &ClientValidator{}, v)
}

func TestClientValidator_UnsupportedType(t *testing.T) {
	v := NewClientValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "client"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}

func TestClientValidator_Client(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Client)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Client) {}},
		{name: "empty name", mutate: func(c *models.Client) { c.Name = "" }, wantErr: ErrEmptyName},
		{name: "blank name", mutate: func(c *models.Client) { c.Name = "  \t" }, wantErr: ErrEmptyName},
		{name: "empty email", mutate: func(c *models.Client) { c.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "email format is not checked", mutate: func(c *models.Client) { c.Email = "not-an-email" }},
		{name: "empty external ref", mutate: func(c *models.Client) { c.ExternalRef = " " }, wantErr: ErrEmptyExternalRef},
		{name: "numeric placeholder ref is fine", mutate: func(c *models.Client) { c.ExternalRef = "0" }},
		{name: "id not required by default", mutate: func(c *models.Client) { c.ID = 0 }},
		{name: "id required when asked", mutate: func(c *models.Client) { c.ID = 0 }, fields: []string{FieldID}, wantErr: ErrInvalidID},
		{name: "id present", mutate: func(c *models.Client) { c.ID = 7 }, fields: []string{FieldID, FieldName}},
		{name: "scoped fields skip others", mutate: func(c *models.Client) { c.Email = "" }, fields: []string{FieldName}},
		{name: "unknown field", mutate: func(*models.Client) {}, fields: []string{"phone"}, wantErr: ErrUnknownField},
		{name: "username is not a client field", mutate: func(*models.Client) {}, fields: []string{FieldUsername}, wantErr: ErrUnknownField},
	}

	v := NewClientValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClient()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			assert.Equal(t, err, v.Validate(context.Background(), &c, tt.fields...))
		})
	}
}

func TestClientValidator_RemoteUser(t *testing.T) {
	v := NewClientValidator()
	ctx := context.Background()

	user := models.RemoteUser{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz", Username: "Bret"}
	assert.NoError(t, v.Validate(ctx, user))
	assert.NoError(t, v.Validate(ctx, &user, FieldID))

	user.Username = ""
	assert.ErrorIs(t, v.Validate(ctx, user), ErrEmptyUsername)

	user.Username = "Bret"
	user.Name = " "
	assert.ErrorIs(t, v.Validate(ctx, user), ErrEmptyName)

	assert.ErrorIs(t, v.Validate(ctx, models.RemoteUser{}, FieldID), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, user, FieldExternalRef), ErrUnknownField)
}
