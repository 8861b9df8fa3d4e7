package export

import (
	"strconv"
	"time"

	"github.com/Spok95/admissions-site/internal/models"
)

var bookingHeader = []string{"ID", "Student name", "Phone", "Class", "City", "Created at"}

func BookingsSheet(bookings []models.Booking, loc *time.Location) SheetSpec {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.StudentName,
			b.PhoneNumber,
			b.StudentClass,
			b.City,
			formatTime(b.CreatedAt, loc),
		})
	}
	return SheetSpec{Title: "Bookings", Header: bookingHeader, Rows: rows}
}

func BookingsWorkbook(bookings []models.Booking, loc *time.Location) (*Workbook, error) {
	return NewWorkbook([]SheetSpec{BookingsSheet(bookings, loc)})
}
