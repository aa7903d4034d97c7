// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/utils"
	"github.com/MKhiriev/client-registry/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	users, err := h.users.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Int64("user_id", id).Msg("error getting user")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	user, err := decodeUser(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		h.writeError(w, err)
		return
	}

	if err = h.validator.Validate(r.Context(), user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid user was passed")
		h.writeError(w, err)
		return
	}

	created, err := h.users.Create(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := decodeUser(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.replaceUser").Msg("Invalid JSON was passed")
		h.writeError(w, err)
		return
	}
	// the path wins over whatever id the body carries
	user.ID = id

	if err = h.validator.Validate(r.Context(), user); err != nil {
		log.Err(err).Str("func", "*Handler.replaceUser").Int64("user_id", id).Msg("invalid user was passed")
		h.writeError(w, err)
		return
	}

	replaced, err := h.users.Replace(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.replaceUser").Int64("user_id", id).Msg("error replacing user")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, replaced, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOr(r.Context(), h.logger)

	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.users.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("user_id", id).Msg("error deleting user")
		h.writeError(w, err)
		return
	}

	// jsonplaceholder answers deletes with an empty object
	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	utils.WriteError(w, err.Error(), statusFromError(err))
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

func decodeUser(r *http.Request) (models.RemoteUser, error) {
	var user models.RemoteUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return user, nil
}
