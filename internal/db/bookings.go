package db

import (
	"context"
	"database/sql"

	"github.com/Spok95/admissions-site/internal/models"
)

func CreateBooking(ctx context.Context, database *sql.DB, b models.NewBooking) (models.Booking, error) {
	var out models.Booking
	err := database.QueryRowContext(ctx, `
		INSERT INTO bookings (student_name, phone_number, student_class, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, student_name, phone_number, student_class, city, created_at
	`, b.StudentName, b.PhoneNumber, b.StudentClass, b.City).Scan(
		&out.ID, &out.StudentName, &out.PhoneNumber, &out.StudentClass, &out.City, &out.CreatedAt,
	)
	return out, err
}

// ListBookings returns every booking, newest first.
func ListBookings(ctx context.Context, database *sql.DB) ([]models.Booking, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, student_name, phone_number, student_class, city, created_at
		FROM bookings
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.StudentName, &b.PhoneNumber, &b.StudentClass, &b.City, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
