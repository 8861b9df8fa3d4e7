package export

import (
	"strconv"
	"time"

	"github.com/Spok95/admissions-site/internal/models"
	"github.com/Spok95/admissions-site/internal/quiz"
)

var (
	submissionHeader = []string{
		"ID", "User ID", "Name", "Parent name", "College", "Mobile", "Email",
		"Score", "Recomputed", "Maths", "English", "Tech", "Submitted at",
	}
	answerHeader = []string{"Submission ID", "Email", "Question", "Category", "Selected", "Correct answer", "Status"}
)

// SubmissionsWorkbook has a summary sheet with one row per submission and an
// answers sheet with one row per graded answer. "Score" is what the client
// sent; "Recomputed" is the bank's own count. Submissions whose answers
// document cannot be read get an empty recomputed score and no answer rows.
func SubmissionsWorkbook(subs []models.TestSubmissionWithUser, bank *quiz.Bank, loc *time.Location) (*Workbook, error) {
	summary := SheetSpec{Title: "Submissions", Header: submissionHeader}
	answers := SheetSpec{Title: "Answers", Header: answerHeader}

	for _, s := range subs {
		score := ""
		if s.Score != nil {
			score = *s.Score
		}
		recomputed := []string{"", "", "", ""}
		if decoded, ok := models.DecodeAnswers(s.Answers); ok {
			res := bank.Score(decoded)
			recomputed = []string{
				res.String(),
				strconv.Itoa(res.PerCategory[quiz.CategoryMaths]),
				strconv.Itoa(res.PerCategory[quiz.CategoryEnglish]),
				strconv.Itoa(res.PerCategory[quiz.CategoryTech]),
			}
			for _, g := range bank.Grade(decoded) {
				category := ""
				if q, ok := bank.Lookup(g.QuestionID); ok {
					category = q.Category
				}
				answers.Rows = append(answers.Rows, []string{
					strconv.FormatInt(s.ID, 10),
					s.User.Email,
					g.QuestionID,
					category,
					g.Selected,
					g.Correct,
					g.Status,
				})
			}
		}

		row := []string{
			strconv.FormatInt(s.ID, 10),
			strconv.FormatInt(s.UserID, 10),
			s.User.Name,
			s.User.ParentName,
			s.User.CollegeName,
			s.User.MobileNumber,
			s.User.Email,
			score,
		}
		row = append(row, recomputed...)
		row = append(row, formatTime(s.CreatedAt, loc))
		summary.Rows = append(summary.Rows, row)
	}
	return NewWorkbook([]SheetSpec{summary, answers})
}
