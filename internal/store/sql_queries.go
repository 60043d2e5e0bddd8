package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, name, password)
    VALUES ($1, $2, $3)
    RETURNING id, email, name, password;`

	updateUser = `UPDATE users
    SET email = $1, name = $2, password = $3
    WHERE id = $4
    RETURNING id, email, name, password;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	findUserByCredentials = `SELECT id, email, name, password
    FROM users
    WHERE email = $1 AND password = $2;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the paginated SELECT for the list operation:
// one page of limit rows starting at offset (page-1)*limit, ordered by
// ascending id.
//
// page and limit are used as given; values below 1 produce a degenerate
// query the same way the raw arithmetic would.
func buildListUsersQuery(page, limit int64) (string, []any, error) {
	offset := (page - 1) * limit

	return psql.
		Select("id", "email", "name", "password").
		From("users").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

// buildCountUsersQuery builds the unfiltered COUNT over the whole users
// table used for pagination metadata.
func buildCountUsersQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("users").
		ToSql()
}
