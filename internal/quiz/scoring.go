package quiz

import (
	"fmt"

	"github.com/Spok95/admissions-site/internal/models"
)

type Result struct {
	Correct int
	Total   int
	// PerCategory counts correct answers by category.
	PerCategory map[string]int
}

// String renders the stored score format, e.g. "12/15".
func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// Score grades an answer set against the whole bank. Answers are keyed by
// question id, so a later answer for the same question replaces an earlier
// one; questions without an answer count as incorrect.
func (b *Bank) Score(answers []models.Answer) Result {
	latest := make(map[string]int, len(answers))
	for _, a := range answers {
		latest[a.QuestionID] = a.SelectedOption
	}

	res := Result{Total: len(b.ordered), PerCategory: make(map[string]int, 3)}
	for _, q := range b.ordered {
		if _, ok := res.PerCategory[q.Category]; !ok {
			res.PerCategory[q.Category] = 0
		}
		selected, ok := latest[q.ID]
		if ok && selected == q.CorrectIndex {
			res.Correct++
			res.PerCategory[q.Category]++
		}
	}
	return res
}

const (
	GradeCorrect         = "correct"
	GradeIncorrect       = "incorrect"
	GradeUnknownQuestion = "unknown_question"
)

type GradedAnswer struct {
	models.Answer
	Status string
	// Selected and Correct are option texts; empty when they cannot be resolved.
	Selected string
	Correct  string
}

// Grade annotates each stored answer for admin review, in the stored order.
func (b *Bank) Grade(answers []models.Answer) []GradedAnswer {
	out := make([]GradedAnswer, 0, len(answers))
	for _, a := range answers {
		q, ok := b.byID[a.QuestionID]
		if !ok {
			out = append(out, GradedAnswer{Answer: a, Status: GradeUnknownQuestion})
			continue
		}
		g := GradedAnswer{Answer: a, Status: GradeIncorrect, Correct: q.Options[q.CorrectIndex]}
		if a.SelectedOption >= 0 && a.SelectedOption < len(q.Options) {
			g.Selected = q.Options[a.SelectedOption]
		}
		if a.SelectedOption == q.CorrectIndex {
			g.Status = GradeCorrect
		}
		out = append(out, g)
	}
	return out
}
