package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It translates the five user operations into single SQL statements against
// the "users" table; each statement is implicitly atomic at the database
// level, so no transactions are used.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetUsers returns one page of users ordered by ascending id plus the
// unfiltered row count of the whole table.
//
// The count query runs first. When it fails, the failure is logged and the
// count degrades to 0 while the page query still proceeds — pagination
// metadata is best-effort and must not block the listing itself.
func (r *userRepository) GetUsers(ctx context.Context, page, limit int64) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	countQuery, countArgs, err := buildCountUsersQuery()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		// count is metadata only: degrade to zero, keep the cause in the log
		log.Warn().Err(err).Str("func", "*userRepository.GetUsers").Msg("count query failed, falling back to 0")
		total = 0
	}

	listQuery, listArgs, err := buildListUsersQuery(page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error executing list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.Password); err != nil {
			log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error: scanning error")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error: rows iteration error")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, total, nil
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The password is stored
// exactly as given.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Name, user.Password)

	// scan saved user from db
	if err := row.Scan(&created.ID, &created.Email, &created.Name, &created.Password); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// UpdateUser overwrites name, email and password of the row matching userID
// and returns the updated record.
//
// The UPDATE carries a RETURNING clause; when no row matches, the scan fails
// with [sql.ErrNoRows] which is mapped to [ErrNoUserWasFound] — updating a
// missing user never silently creates a row.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, user models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	row := r.db.QueryRowContext(ctx, updateUser, user.Email, user.Name, user.Password, userID)

	if err := row.Scan(&updated.ID, &updated.Email, &updated.Name, &updated.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", userID).Msg("no user to update")
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: update failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the row matching userID.
//
// The number of affected rows is deliberately ignored: deleting an id that
// does not exist succeeds. Only a statement-execution failure is reported,
// annotated with the classifier's retryable/non-retryable verdict for the
// operator reading the logs.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteUser, userID); err != nil {
		classification := r.db.errorClassificator.Classify(err)
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Int64("id", userID).
			Bool("retryable", classification == Retryable).
			Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindUserByCredentials retrieves the unique user whose email and password
// both match exactly. Passwords are compared verbatim at the database level.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error" and
//     returned to the caller; an authentication lookup failing on a transient
//     database error must not take the process down.
func (r *userRepository) FindUserByCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByCredentials, email, password)

	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.Name, &foundUser.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByCredentials").Msg("error: credentials lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
