package store

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserRepository is the persistence contract for the users table.
//
// GetUsers returns one page of users ordered by ascending id together with
// the unfiltered row count of the whole table. A failure of the count query
// alone is not an error: the count silently degrades to zero.
//
// DeleteUser reports only statement-execution failures; deleting an id that
// does not exist is a successful no-op.
type UserRepository interface {
	GetUsers(ctx context.Context, page, limit int64) ([]models.User, int64, error)
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, user models.NewUser) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	FindUserByCredentials(ctx context.Context, email, password string) (models.User, error)
}
