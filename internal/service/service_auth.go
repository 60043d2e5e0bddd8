package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification against the UserRepository and the
// JWT token lifecycle (HMAC-SHA512 issuance and validation).
//
// There is no refresh mechanism and no revocation list: a token is valid
// until its natural expiry, and re-authentication via Login is the only
// renewal path. This is an accepted trust boundary of the system.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the symmetric secret used to sign and verify JWT tokens.
	// Loaded once at startup and held for the lifetime of the process.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user by exact email/password match.
//
// It validates that both fields are non-empty and delegates the lookup to
// the UserRepository; passwords are compared verbatim at the database level.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - store.ErrNoUserWasFound (wrapped) when no row matches — either field
//     being wrong is indistinguishable from the user not existing.
//   - A wrapped storage error on any other database failure.
func (a *authService) Login(ctx context.Context, user models.LoginUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByCredentials(ctx, user.Email, user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by credentials failed")
		return models.User{}, fmt.Errorf("user search by credentials failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey using HMAC-SHA512,
// carries the user's ID as the "subject_id" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the signing method, and the expiry claim. Failures are normalised so that
// the transport layer can map them to user-facing messages:
//   - expired token → ErrTokenIsExpired
//   - malformed token or signature mismatch → ErrTokenIsInvalid
//   - anything else → wrapped decode error
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenIsExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenIsInvalid
		default:
			return models.Token{}, err
		}
	}

	return token, nil
}
