package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/Spok95/admissions-site/internal/models"
)

var ErrNotFound = errors.New("not found")

const userColumns = `id, name, parent_name, college_name, mobile_number, email, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.ParentName, &u.CollegeName, &u.MobileNumber, &u.Email, &u.CreatedAt)
	return u, err
}

// EmailExists expects an already normalized email.
func EmailExists(ctx context.Context, database *sql.DB, email string) (bool, error) {
	var exists bool
	err := database.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// CreateUser inserts a user. A duplicate email surfaces as a unique
// violation on ConstraintUsersEmail.
func CreateUser(ctx context.Context, database *sql.DB, u models.NewUser) (models.User, error) {
	row := database.QueryRowContext(ctx, `
		INSERT INTO users (name, parent_name, college_name, mobile_number, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		u.Name, u.ParentName, u.CollegeName, u.MobileNumber, u.Email)
	return scanUser(row)
}

func GetUserByID(ctx context.Context, database *sql.DB, id int64) (models.User, error) {
	u, err := scanUser(database.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// GetUsersByIDs fetches a batch of users keyed by id; ids with no row are
// simply absent from the map.
func GetUsersByIDs(ctx context.Context, database *sql.DB, ids []int64) (map[int64]models.User, error) {
	out := make(map[int64]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := database.QueryContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1::bigint[])`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}
