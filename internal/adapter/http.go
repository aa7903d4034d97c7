// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/utils"
	"github.com/MKhiriev/client-registry/models"
)

const usersPath = "/users"

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the resty implementation of
// [RemoteAdapter]. cfg.BaseURL may omit the scheme ("http://" is assumed);
// cfg.RequestTimeout bounds every request.
func NewHTTPRemoteAdapter(cfg config.Adapter, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpRemoteAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteAdapter) FetchUsers(ctx context.Context) ([]models.RemoteUser, error) {
	resp, err := h.client.R().SetContext(ctx).Get(usersPath)
	if err != nil {
		h.log(ctx).Err(err).Str("func", "httpRemoteAdapter.FetchUsers").Msg("request failed")
		return nil, fmt.Errorf("%w: fetch users request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.log(ctx).Err(err).Str("func", "httpRemoteAdapter.FetchUsers").Int("status", resp.StatusCode()).Msg("remote api answered with error")
		return nil, err
	}

	var users []models.RemoteUser
	if err = decode(resp, &users); err != nil {
		h.log(ctx).Err(err).Str("func", "httpRemoteAdapter.FetchUsers").Msg("malformed users response")
		return nil, err
	}
	if users == nil {
		// a literal null body is not an array
		return nil, fmt.Errorf("%w: users response is null", ErrDecode)
	}

	return users, nil
}

func (h *httpRemoteAdapter) FetchUser(ctx context.Context, id int64) (models.RemoteUser, error) {
	resp, err := h.client.R().SetContext(ctx).Get(userPath(id))
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: fetch user request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteUser{}, err
	}

	var user models.RemoteUser
	if err = decode(resp, &user); err != nil {
		return models.RemoteUser{}, err
	}
	return user, nil
}

func (h *httpRemoteAdapter) CreateUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(usersPath)
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: create user request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteUser{}, err
	}

	var created models.RemoteUser
	if err = decode(resp, &created); err != nil {
		return models.RemoteUser{}, err
	}
	return created, nil
}

func (h *httpRemoteAdapter) UpdateUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put(userPath(user.ID))
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: update user request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteUser{}, err
	}

	var updated models.RemoteUser
	if err = decode(resp, &updated); err != nil {
		return models.RemoteUser{}, err
	}
	return updated, nil
}

func (h *httpRemoteAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.client.R().SetContext(ctx).Delete(userPath(id))
	if err != nil {
		return fmt.Errorf("%w: delete user request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, h.logger)
}

func userPath(id int64) string {
	return usersPath + "/" + strconv.FormatInt(id, 10)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
