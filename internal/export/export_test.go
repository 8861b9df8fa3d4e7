package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/admissions-site/internal/models"
	"github.com/Spok95/admissions-site/internal/quiz"
)

func reopen(t *testing.T, w *Workbook) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestColumnName(t *testing.T) {
	cases := map[int]string{1: "A", 26: "Z", 27: "AA", 52: "AZ", 53: "BA"}
	for n, want := range cases {
		if got := columnName(n); got != want {
			t.Fatalf("columnName(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFilename(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)
	if got := Filename("bookings", now, loc); got != "bookings_2024-04-01.xlsx" {
		t.Fatalf("Filename = %q", got)
	}
	if got := Filename("test details", now, nil); got != "test_details_2024-03-31.xlsx" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestNewWorkbookNeedsSheets(t *testing.T) {
	if _, err := NewWorkbook(nil); err == nil {
		t.Fatalf("expected error for empty workbook")
	}
}

func TestBookingsWorkbook(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	created := time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC)
	wb, err := BookingsWorkbook([]models.Booking{
		{ID: 7, StudentName: "Asha", PhoneNumber: "9876543210", StudentClass: "10", City: "Pune", CreatedAt: created},
	}, loc)
	if err != nil {
		t.Fatalf("BookingsWorkbook: %v", err)
	}
	f := reopen(t, wb)

	rows, err := f.GetRows("Bookings")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][1] != "Student name" {
		t.Fatalf("header = %v", rows[0])
	}
	want := []string{"7", "Asha", "9876543210", "10", "Pune", "01.05.2024 12:00"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Fatalf("cell %d = %q, want %q", i, rows[1][i], v)
		}
	}
}

func TestSubmissionsWorkbook(t *testing.T) {
	bank := quiz.NewBank()
	score := "2/15"
	subs := []models.TestSubmissionWithUser{
		{
			TestSubmission: models.TestSubmission{
				ID:      1,
				UserID:  3,
				Answers: json.RawMessage(`[{"questionId":"m1","selectedOption":0},{"questionId":"m2","selectedOption":0},{"questionId":"zz","selectedOption":1}]`),
				Score:   &score,
			},
			User: models.User{ID: 3, Name: "Ravi", Email: "ravi@example.com"},
		},
		{
			TestSubmission: models.TestSubmission{ID: 2, UserID: 4, Answers: json.RawMessage(`{"broken":true}`)},
			User:           models.User{ID: 4, Name: "Meera", Email: "meera@example.com"},
		},
	}

	wb, err := SubmissionsWorkbook(subs, bank, time.UTC)
	if err != nil {
		t.Fatalf("SubmissionsWorkbook: %v", err)
	}
	f := reopen(t, wb)

	summary, err := f.GetRows("Submissions")
	if err != nil {
		t.Fatalf("GetRows summary: %v", err)
	}
	if len(summary) != 3 {
		t.Fatalf("summary rows = %d, want 3", len(summary))
	}
	// client score, recomputed score, maths count
	if summary[1][7] != "2/15" || summary[1][8] != "1/15" || summary[1][9] != "1" {
		t.Fatalf("summary row = %v", summary[1])
	}
	if len(summary[2]) > 8 && summary[2][8] != "" {
		t.Fatalf("unreadable answers should not be scored, got %v", summary[2])
	}

	answers, err := f.GetRows("Answers")
	if err != nil {
		t.Fatalf("GetRows answers: %v", err)
	}
	if len(answers) != 4 {
		t.Fatalf("answer rows = %d, want 4", len(answers))
	}
	if answers[1][6] != quiz.GradeCorrect || answers[2][6] != quiz.GradeIncorrect || answers[3][6] != quiz.GradeUnknownQuestion {
		t.Fatalf("statuses = %v / %v / %v", answers[1], answers[2], answers[3])
	}
}
