package quiz

import (
	"testing"

	"github.com/Spok95/admissions-site/internal/models"
)

func TestNewBankLayout(t *testing.T) {
	bank := NewBank()
	if bank.Len() != 15 {
		t.Fatalf("bank size = %d, want 15", bank.Len())
	}

	groups := bank.ByCategory()
	for _, category := range []string{CategoryMaths, CategoryEnglish, CategoryTech} {
		if len(groups[category]) != 5 {
			t.Fatalf("category %s has %d questions, want 5", category, len(groups[category]))
		}
	}

	all := bank.All()
	if all[0].ID != "m1" || all[5].ID != "e1" || all[14].ID != "t5" {
		t.Fatalf("unexpected order: %s %s %s", all[0].ID, all[5].ID, all[14].ID)
	}
	for _, q := range all {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Fatalf("question %s correct index %d out of range", q.ID, q.CorrectIndex)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	bank := NewBank()
	all := bank.All()
	all[0].ID = "changed"
	if q, _ := bank.Lookup("m1"); q.ID != "m1" {
		t.Fatalf("bank mutated through All()")
	}
	if bank.All()[0].ID != "m1" {
		t.Fatalf("bank order mutated through All()")
	}
}

func TestScoreMathsPerfect(t *testing.T) {
	bank := NewBank()
	res := bank.Score([]models.Answer{
		{QuestionID: "m1", SelectedOption: 0},
		{QuestionID: "m2", SelectedOption: 1},
		{QuestionID: "m3", SelectedOption: 1},
		{QuestionID: "m4", SelectedOption: 1},
		{QuestionID: "m5", SelectedOption: 1},
	})
	if res.PerCategory[CategoryMaths] != 5 {
		t.Fatalf("maths = %d, want 5", res.PerCategory[CategoryMaths])
	}
	if got := res.String(); got != "5/15" {
		t.Fatalf("score = %q, want 5/15", got)
	}
}

func TestScoreEmpty(t *testing.T) {
	res := NewBank().Score(nil)
	if got := res.String(); got != "0/15" {
		t.Fatalf("score = %q, want 0/15", got)
	}
	if res.PerCategory[CategoryTech] != 0 {
		t.Fatalf("tech = %d, want 0", res.PerCategory[CategoryTech])
	}
}

func TestScoreLastAnswerWins(t *testing.T) {
	bank := NewBank()

	res := bank.Score([]models.Answer{
		{QuestionID: "t2", SelectedOption: 2},
		{QuestionID: "t2", SelectedOption: 0},
	})
	if res.Correct != 0 {
		t.Fatalf("correct = %d, want 0 after overwrite with wrong option", res.Correct)
	}

	res = bank.Score([]models.Answer{
		{QuestionID: "t2", SelectedOption: 0},
		{QuestionID: "t2", SelectedOption: 2},
	})
	if res.Correct != 1 {
		t.Fatalf("correct = %d, want 1 after overwrite with right option", res.Correct)
	}
}

func TestScoreIgnoresUnknownQuestions(t *testing.T) {
	res := NewBank().Score([]models.Answer{{QuestionID: "x9", SelectedOption: 0}})
	if res.String() != "0/15" {
		t.Fatalf("score = %q", res.String())
	}
}

func TestGrade(t *testing.T) {
	graded := NewBank().Grade([]models.Answer{
		{QuestionID: "e3", SelectedOption: 0},
		{QuestionID: "e2", SelectedOption: 3},
		{QuestionID: "e2", SelectedOption: 99},
		{QuestionID: "zz", SelectedOption: 1},
	})

	want := []string{GradeCorrect, GradeIncorrect, GradeIncorrect, GradeUnknownQuestion}
	if len(graded) != len(want) {
		t.Fatalf("got %d graded answers, want %d", len(graded), len(want))
	}
	for i := range want {
		if graded[i].Status != want[i] {
			t.Fatalf("graded[%d].Status = %q, want %q", i, graded[i].Status, want[i])
		}
	}
	if graded[0].Selected != "went" || graded[1].Correct != "Kind" {
		t.Fatalf("unexpected option texts: %+v %+v", graded[0], graded[1])
	}
	if graded[2].Selected != "" {
		t.Fatalf("out of range option resolved to %q", graded[2].Selected)
	}
}
