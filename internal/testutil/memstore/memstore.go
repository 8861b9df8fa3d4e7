// Package memstore is an in-memory submission.Store for tests. It enforces the
// same unique and foreign key constraints as the Postgres schema and reports
// violations as *pgconn.PgError, so callers see what the real driver returns.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Spok95/admissions-site/internal/db"
	"github.com/Spok95/admissions-site/internal/models"
)

type Store struct {
	mu       sync.Mutex
	now      func() time.Time
	nextID   int64
	bookings []models.Booking
	users    map[int64]models.User
	tests    []models.TestSubmission

	// Err, when set, is returned by every call.
	Err error
	// HideExisting makes EmailExists and TestSubmissionExists always report
	// false, which is what a request losing a race observes.
	HideExisting bool
	// Calls counts method invocations by name.
	Calls map[string]int
}

func New() *Store {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	return &Store{
		users: make(map[int64]models.User),
		Calls: make(map[string]int),
		now: func() time.Time {
			tick++
			return start.Add(time.Duration(tick) * time.Minute)
		},
	}
}

func (s *Store) enter(name string) error {
	s.Calls[name]++
	return s.Err
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) CreateBooking(_ context.Context, b models.NewBooking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateBooking"); err != nil {
		return models.Booking{}, err
	}
	out := models.Booking{
		ID:           s.id(),
		StudentName:  b.StudentName,
		PhoneNumber:  b.PhoneNumber,
		StudentClass: b.StudentClass,
		City:         b.City,
		CreatedAt:    s.now(),
	}
	s.bookings = append(s.bookings, out)
	return out, nil
}

func (s *Store) ListBookings(_ context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ListBookings"); err != nil {
		return nil, err
	}
	out := append([]models.Booking(nil), s.bookings...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("EmailExists"); err != nil {
		return false, err
	}
	if s.HideExisting {
		return false, nil
	}
	return s.hasEmail(email), nil
}

func (s *Store) hasEmail(email string) bool {
	for _, u := range s.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(_ context.Context, u models.NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateUser"); err != nil {
		return models.User{}, err
	}
	if s.hasEmail(u.Email) {
		return models.User{}, &pgconn.PgError{Code: "23505", ConstraintName: db.ConstraintUsersEmail}
	}
	out := models.User{
		ID:           s.id(),
		Name:         u.Name,
		ParentName:   u.ParentName,
		CollegeName:  u.CollegeName,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		CreatedAt:    s.now(),
	}
	s.users[out.ID] = out
	return out, nil
}

func (s *Store) GetUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetUserByID"); err != nil {
		return models.User{}, err
	}
	u, ok := s.users[id]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUsersByIDs(_ context.Context, ids []int64) (map[int64]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetUsersByIDs"); err != nil {
		return nil, err
	}
	out := make(map[int64]models.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (s *Store) TestSubmissionExists(_ context.Context, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("TestSubmissionExists"); err != nil {
		return false, err
	}
	if s.HideExisting {
		return false, nil
	}
	return s.hasTest(userID), nil
}

func (s *Store) hasTest(userID int64) bool {
	for _, t := range s.tests {
		if t.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Store) CreateTestSubmission(_ context.Context, t models.NewTestSubmission) (models.TestSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateTestSubmission"); err != nil {
		return models.TestSubmission{}, err
	}
	if _, ok := s.users[t.UserID]; !ok {
		return models.TestSubmission{}, &pgconn.PgError{Code: "23503", ConstraintName: db.ConstraintTestDetailsFK}
	}
	if s.hasTest(t.UserID) {
		return models.TestSubmission{}, &pgconn.PgError{Code: "23505", ConstraintName: db.ConstraintTestDetailsUser}
	}
	out := models.TestSubmission{
		ID:        s.id(),
		UserID:    t.UserID,
		Answers:   append(json.RawMessage(nil), t.Answers...),
		Score:     t.Score,
		CreatedAt: s.now(),
	}
	if len(t.Answers) == 0 {
		out.Answers = nil
	}
	s.tests = append(s.tests, out)
	return out, nil
}

func (s *Store) ListTestSubmissions(_ context.Context) ([]models.TestSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ListTestSubmissions"); err != nil {
		return nil, err
	}
	out := append([]models.TestSubmission(nil), s.tests...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// DeleteUserRow removes a user without cascading, leaving its submission
// orphaned.
func (s *Store) DeleteUserRow(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}
