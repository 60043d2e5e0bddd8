package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// protected routes.
//
// It inspects the incoming "Authorization" header, strips the optional
// "Bearer" prefix, validates the token via [service.AuthService.ParseToken],
// and — on success — stores the validated claims in the request context under
// [utils.AuthClaimsCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with an HTTP 401 envelope in the following
// cases:
//   - The "Authorization" header is absent ("no token provided").
//   - The token has expired ("expired token").
//   - The token is malformed or its signature does not verify
//     ("invalid token").
//   - Any other parse failure (the underlying error detail as message).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrNoTokenProvided).Send()
			writeEnvelope(w, r, http.StatusUnauthorized, ErrNoTokenProvided.Error(), nil)
			return
		}

		// the Bearer prefix is optional: a raw token value is accepted too
		tokenString := utils.StripBearerPrefix(authHeader)

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				writeEnvelope(w, r, http.StatusUnauthorized, "expired token", nil)
				return
			case errors.Is(err, service.ErrTokenIsInvalid):
				log.Err(err).Msg("token invalid")
				writeEnvelope(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				writeEnvelope(w, r, http.StatusUnauthorized, err.Error(), nil)
				return
			}
		}

		// Store the validated claims in the context so that downstream
		// handlers can retrieve the authenticated subject without re-parsing
		// the token.
		ctx = context.WithValue(ctx, utils.AuthClaimsCtxKey, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
