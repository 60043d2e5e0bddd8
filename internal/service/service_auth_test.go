package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/mock"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenDuration: time.Minute,
	}, logger.Nop())
	return svc, mockRepo
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	found := models.User{ID: 42, Email: "john@example.com", Name: "John", Password: "secret"}
	mockRepo.EXPECT().FindUserByCredentials(ctx, "john@example.com", "secret").Return(found, nil)

	got, err := svc.Login(ctx, models.LoginUser{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, found, got)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		user models.LoginUser
	}{
		{"empty email", models.LoginUser{Password: "secret"}},
		{"empty password", models.LoginUser{Email: "john@example.com"}},
		{"both empty", models.LoginUser{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByCredentials(ctx, "john@example.com", "wrong").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginUser{Email: "john@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_DBErrorIsReturnedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("unexpected DB error: connection lost")
	mockRepo.EXPECT().FindUserByCredentials(ctx, gomock.Any(), gomock.Any()).
		Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.LoginUser{Email: "john@example.com", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

// ── Token lifecycle ──────────────────────────────────────────────────────────

func TestAuthService_CreateToken_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.Claims.SubjectID)
}

func TestAuthService_CreateToken_EmptyKeyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), config.App{
		TokenSignKey:  "",
		TokenDuration: time.Minute,
	}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(1, -time.Minute, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken(1, time.Minute, "some-other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
