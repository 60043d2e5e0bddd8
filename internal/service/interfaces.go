package service

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserService exposes the CRUD operations of the users resource to the
// transport layer.
//
// DeleteUser deliberately returns a bare boolean: a statement failure is
// logged internally and collapsed to false, preserving the coarse
// success/not-found split of the API boundary.
type UserService interface {
	GetUsers(ctx context.Context, page, limit int64) ([]models.User, int64, error)
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, user models.NewUser) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) bool
}

// AuthService owns the authentication flow and the token lifecycle.
type AuthService interface {
	Login(ctx context.Context, user models.LoginUser) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
