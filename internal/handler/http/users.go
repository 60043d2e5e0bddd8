package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-chi/chi/v5"
)

// getUsers returns one page of users with pagination metadata. The total in
// the meta block is the unfiltered row count of the whole table.
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params := parsePagination(r)

	users, total, err := h.services.UserService.GetUsers(ctx, params.Page, params.Limit)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing users")
		writeEnvelope(w, r, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	meta := models.Meta{
		TotalData: total,
		PerPage:   params.Limit,
		Page:      params.Page,
	}

	writeEnvelopeWithPagination(w, r, http.StatusOK, "get users", meta, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeEnvelope(w, r, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	createdUser, err := h.services.UserService.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeEnvelope(w, r, http.StatusConflict, store.ErrEmailAlreadyExists.Error(), nil)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			writeEnvelope(w, r, http.StatusInternalServerError, err.Error(), nil)
			return
		}
	}

	writeEnvelope(w, r, http.StatusCreated, "create user successfuly", createdUser)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeEnvelope(w, r, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	var user models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeEnvelope(w, r, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, userID, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("no user was found")
			writeEnvelope(w, r, http.StatusNotFound, store.ErrNoUserWasFound.Error(), nil)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
			writeEnvelope(w, r, http.StatusInternalServerError, err.Error(), nil)
			return
		}
	}

	writeEnvelope(w, r, http.StatusOK, "update user successfully", updatedUser)
}

// deleteUser reports bare success or "not found". Deleting a nonexistent id
// reports success: the store treats zero affected rows as a completed delete.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeEnvelope(w, r, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	if deleted := h.services.UserService.DeleteUser(ctx, userID); !deleted {
		writeEnvelope(w, r, http.StatusNotFound, "not found", false)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "delete user successfully", true)
}

// parsePagination reads page and limit from the query string. When either
// parameter is missing or unparsable the whole pair falls back to the
// defaults {page: 1, limit: 10}. Degenerate values that do parse (page < 1,
// limit <= 0) are passed through untouched.
func parsePagination(r *http.Request) models.PaginationParams {
	defaults := models.PaginationParams{Page: 1, Limit: 10}

	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil {
		return defaults
	}

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		return defaults
	}

	return models.PaginationParams{Page: page, Limit: limit}
}
