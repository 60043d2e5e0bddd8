package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
)

// login authenticates a user by exact email/password match and returns a
// freshly issued signed token in the envelope's data field.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.LoginUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeEnvelope(w, r, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeEnvelope(w, r, http.StatusBadRequest, service.ErrInvalidDataProvided.Error(), nil)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			writeEnvelope(w, r, http.StatusNotFound, store.ErrNoUserWasFound.Error(), nil)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeEnvelope(w, r, http.StatusInternalServerError, err.Error(), nil)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeEnvelope(w, r, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	writeEnvelope(w, r, http.StatusCreated, "login successfully", token.SignedString)
}
