package models

import (
	"encoding/json"
	"testing"
)

func TestDecodeAnswers(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []Answer
		wantOK bool
	}{
		{name: "empty", raw: "", wantOK: false},
		{name: "null", raw: "null", wantOK: false},
		{name: "object", raw: `{"questionId":"m1"}`, wantOK: false},
		{name: "empty array", raw: `[]`, want: []Answer{}, wantOK: true},
		{
			name:   "valid",
			raw:    `[{"questionId":"m1","selectedOption":0},{"questionId":"t2","selectedOption":2}]`,
			want:   []Answer{{QuestionID: "m1", SelectedOption: 0}, {QuestionID: "t2", SelectedOption: 2}},
			wantOK: true,
		},
		{
			name:   "skips malformed elements",
			raw:    `[{"questionId":"m1","selectedOption":"x"},42,{"questionId":"m2"},{"questionId":"m3","selectedOption":1}]`,
			want:   []Answer{{QuestionID: "m3", SelectedOption: 1}},
			wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeAnswers(json.RawMessage(tc.raw))
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d answers, want %d: %+v", len(got), len(tc.want), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("answer %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}
