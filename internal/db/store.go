package db

import (
	"context"
	"database/sql"

	"github.com/Spok95/admissions-site/internal/models"
)

// Store binds the query functions to one connection pool.
type Store struct {
	DB *sql.DB
}

func NewStore(database *sql.DB) *Store { return &Store{DB: database} }

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) CreateBooking(ctx context.Context, b models.NewBooking) (models.Booking, error) {
	return CreateBooking(ctx, s.DB, b)
}

func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return ListBookings(ctx, s.DB)
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return EmailExists(ctx, s.DB, email)
}

func (s *Store) CreateUser(ctx context.Context, u models.NewUser) (models.User, error) {
	return CreateUser(ctx, s.DB, u)
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return GetUserByID(ctx, s.DB, id)
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error) {
	return GetUsersByIDs(ctx, s.DB, ids)
}

func (s *Store) TestSubmissionExists(ctx context.Context, userID int64) (bool, error) {
	return TestSubmissionExists(ctx, s.DB, userID)
}

func (s *Store) CreateTestSubmission(ctx context.Context, t models.NewTestSubmission) (models.TestSubmission, error) {
	return CreateTestSubmission(ctx, s.DB, t)
}

func (s *Store) ListTestSubmissions(ctx context.Context) ([]models.TestSubmission, error) {
	return ListTestSubmissions(ctx, s.DB)
}
