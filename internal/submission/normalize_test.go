package submission

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "9876543210", want: "9876543210"},
		{in: "+919876543210", want: "9876543210"},
		{in: "+91 98765 43210", want: "9876543210"},
		{in: "+91-98765-43210", want: "9876543210"},
		{in: " 6000000000 ", want: "6000000000"},
		{in: "98765-432-10", want: "9876543210"},
		{in: "5876543210", wantErr: true},
		{in: "987654321", wantErr: true},
		{in: "98765432100", wantErr: true},
		{in: "+9298765432", wantErr: true},
		{in: "98765abc10", wantErr: true},
		{in: "", wantErr: true},
		{in: "09876543210", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("NormalizePhone(%q) err = %v, want ErrInvalidPhone", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if len(got) != 10 || got[0] < '6' || got[0] > '9' {
				t.Fatalf("normalized phone %q is not a 10-digit number starting with 6-9", got)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if NormalizeEmail("A@B.com") != NormalizeEmail(" a@b.com ") {
		t.Fatalf("emails differing only in case and whitespace must collide")
	}
	if got := NormalizeEmail("  Mixed.Case@Example.ORG\t"); got != "mixed.case@example.org" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}
