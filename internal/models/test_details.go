package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Answer is one element of the answers document sent by the quiz page.
type Answer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption int    `json:"selectedOption"`
}

// TestSubmission is a recorded quiz attempt (table test_details). Answers is
// kept exactly as the client sent it; nil means no answers were sent.
type TestSubmission struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Answers   json.RawMessage `json:"answers"`
	Score     *string         `json:"score"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TestSubmissionWithUser is a row of the admin test list.
type TestSubmissionWithUser struct {
	TestSubmission
	User User `json:"user"`
}

type NewTestSubmission struct {
	UserID  int64
	Answers json.RawMessage
	Score   *string
}

// DecodeAnswers reads the stored answers document. Elements that are not
// {questionId, selectedOption} objects are skipped; ok is false when the
// document is missing or is not an array at all.
func DecodeAnswers(raw json.RawMessage) (answers []Answer, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	answers = make([]Answer, 0, len(items))
	for _, item := range items {
		var probe struct {
			QuestionID     *string `json:"questionId"`
			SelectedOption *int    `json:"selectedOption"`
		}
		if err := json.Unmarshal(item, &probe); err != nil {
			continue
		}
		if probe.QuestionID == nil || probe.SelectedOption == nil {
			continue
		}
		answers = append(answers, Answer{QuestionID: *probe.QuestionID, SelectedOption: *probe.SelectedOption})
	}
	return answers, true
}
