package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Spok95/admissions-site/internal/models"
)

const testDetailsColumns = `id, user_id, answers, score, created_at`

func scanTestSubmission(row interface{ Scan(...any) error }) (models.TestSubmission, error) {
	var (
		t       models.TestSubmission
		answers sql.NullString
		score   sql.NullString
	)
	if err := row.Scan(&t.ID, &t.UserID, &answers, &score, &t.CreatedAt); err != nil {
		return models.TestSubmission{}, err
	}
	if answers.Valid {
		t.Answers = json.RawMessage(answers.String)
	}
	if score.Valid {
		s := score.String
		t.Score = &s
	}
	return t, nil
}

func TestSubmissionExists(ctx context.Context, database *sql.DB, userID int64) (bool, error) {
	var exists bool
	err := database.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM test_details WHERE user_id = $1)`, userID).Scan(&exists)
	return exists, err
}

// CreateTestSubmission stores the answers document as-is. A second row for
// the same user fails on ConstraintTestDetailsUser, a missing user on
// ConstraintTestDetailsFK.
func CreateTestSubmission(ctx context.Context, database *sql.DB, t models.NewTestSubmission) (models.TestSubmission, error) {
	var answers sql.NullString
	if len(t.Answers) > 0 {
		answers = sql.NullString{String: string(t.Answers), Valid: true}
	}
	var score sql.NullString
	if t.Score != nil {
		score = sql.NullString{String: *t.Score, Valid: true}
	}
	row := database.QueryRowContext(ctx, `
		INSERT INTO test_details (user_id, answers, score)
		VALUES ($1, $2::jsonb, $3)
		RETURNING `+testDetailsColumns,
		t.UserID, answers, score)
	return scanTestSubmission(row)
}

// ListTestSubmissions returns every submission, newest first, without users.
func ListTestSubmissions(ctx context.Context, database *sql.DB) ([]models.TestSubmission, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT `+testDetailsColumns+`
		FROM test_details
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.TestSubmission, 0)
	for rows.Next() {
		t, err := scanTestSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
