// Package submission implements the booking, participant and quiz submission
// flows on top of a relational store.
package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Spok95/admissions-site/internal/db"
	"github.com/Spok95/admissions-site/internal/metrics"
	"github.com/Spok95/admissions-site/internal/models"
)

// Store is the persistence the service needs; *db.Store implements it.
type Store interface {
	CreateBooking(ctx context.Context, b models.NewBooking) (models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u models.NewUser) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error)
	TestSubmissionExists(ctx context.Context, userID int64) (bool, error)
	CreateTestSubmission(ctx context.Context, t models.NewTestSubmission) (models.TestSubmission, error)
	ListTestSubmissions(ctx context.Context) ([]models.TestSubmission, error)
}

type Service struct {
	store Store
	log   *zap.Logger
	locks *keyLock
}

func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log, locks: newKeyLock()}
}

func (s *Service) CreateBooking(ctx context.Context, in models.NewBooking) (models.Booking, error) {
	phone, err := NormalizePhone(in.PhoneNumber)
	if err != nil {
		return models.Booking{}, err
	}
	b, err := s.store.CreateBooking(ctx, models.NewBooking{
		StudentName:  strings.TrimSpace(in.StudentName),
		PhoneNumber:  phone,
		StudentClass: strings.TrimSpace(in.StudentClass),
		City:         strings.TrimSpace(in.City),
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	s.log.Info("booking created", zap.Int64("booking_id", b.ID), zap.String("city", b.City))
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (s *Service) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.store.EmailExists(ctx, NormalizeEmail(email))
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// CreateUser re-checks the email right before inserting. The check narrows
// the race window only; the unique constraint decides, and both paths return
// ErrEmailTaken.
func (s *Service) CreateUser(ctx context.Context, in models.NewUser) (models.User, error) {
	in.Email = NormalizeEmail(in.Email)
	unlock := s.locks.lock("email:" + in.Email)
	defer unlock()

	exists, err := s.store.EmailExists(ctx, in.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		metrics.Conflicts.WithLabelValues("email", "precheck").Inc()
		return models.User{}, ErrEmailTaken
	}

	u, err := s.store.CreateUser(ctx, in)
	if err != nil {
		if db.IsUniqueViolation(err, db.ConstraintUsersEmail) {
			metrics.Conflicts.WithLabelValues("email", "constraint").Inc()
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", zap.Int64("user_id", u.ID))
	return u, nil
}

// RegisterUser is the check-email flow: advisory existence check for a
// friendly answer, then CreateUser.
func (s *Service) RegisterUser(ctx context.Context, in models.NewUser) (models.User, error) {
	exists, err := s.EmailExists(ctx, in.Email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		metrics.Conflicts.WithLabelValues("email", "precheck").Inc()
		return models.User{}, ErrEmailTaken
	}
	return s.CreateUser(ctx, in)
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	u, err := s.store.GetUserByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// CreateTestSubmission records the single quiz attempt of a user. Answers
// are not checked against the question bank.
func (s *Service) CreateTestSubmission(ctx context.Context, userID int64, answers json.RawMessage, score *string) (models.TestSubmission, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return models.TestSubmission{}, err
	}
	unlock := s.locks.lock("test:" + strconv.FormatInt(userID, 10))
	defer unlock()

	exists, err := s.store.TestSubmissionExists(ctx, userID)
	if err != nil {
		return models.TestSubmission{}, fmt.Errorf("check submission: %w", err)
	}
	if exists {
		metrics.Conflicts.WithLabelValues("submission", "precheck").Inc()
		return models.TestSubmission{}, ErrAlreadySubmitted
	}

	t, err := s.store.CreateTestSubmission(ctx, models.NewTestSubmission{UserID: userID, Answers: answers, Score: score})
	switch {
	case err == nil:
	case db.IsUniqueViolation(err, db.ConstraintTestDetailsUser):
		metrics.Conflicts.WithLabelValues("submission", "constraint").Inc()
		return models.TestSubmission{}, ErrAlreadySubmitted
	case db.IsForeignKeyViolation(err, db.ConstraintTestDetailsFK):
		return models.TestSubmission{}, ErrUserNotFound
	default:
		if c := db.ConstraintName(err); c != "" {
			s.log.Warn("unexpected constraint violation", zap.String("constraint", c), zap.Int64("user_id", userID))
		}
		return models.TestSubmission{}, fmt.Errorf("create test submission: %w", err)
	}
	s.log.Info("test submitted", zap.Int64("user_id", userID), zap.Int64("test_id", t.ID))
	return t, nil
}

// ListTestSubmissions joins submissions with their users in memory: one query
// for submissions, one batch query for the distinct user ids. Submissions
// whose user row is gone are dropped.
func (s *Service) ListTestSubmissions(ctx context.Context) ([]models.TestSubmissionWithUser, error) {
	subs, err := s.store.ListTestSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list test submissions: %w", err)
	}

	seen := make(map[int64]struct{}, len(subs))
	ids := make([]int64, 0, len(subs))
	for _, t := range subs {
		if _, ok := seen[t.UserID]; ok {
			continue
		}
		seen[t.UserID] = struct{}{}
		ids = append(ids, t.UserID)
	}

	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load submission users: %w", err)
	}

	out := make([]models.TestSubmissionWithUser, 0, len(subs))
	for _, t := range subs {
		u, ok := users[t.UserID]
		if !ok {
			s.log.Warn("dropping submission without user", zap.Int64("test_id", t.ID), zap.Int64("user_id", t.UserID))
			continue
		}
		out = append(out, models.TestSubmissionWithUser{TestSubmission: t, User: u})
	}
	return out, nil
}
