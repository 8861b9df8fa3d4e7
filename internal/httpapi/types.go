package httpapi

import (
	"encoding/json"

	"github.com/Spok95/admissions-site/internal/quiz"
)

type bookingRequest struct {
	StudentName  string `json:"studentName" validate:"required,min=2"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,in_mobile"`
	StudentClass string `json:"studentClass" validate:"required"`
	City         string `json:"city" validate:"required,min=2"`
}

type userRequest struct {
	Name         string `json:"name" validate:"required"`
	ParentName   string `json:"parentName" validate:"required"`
	CollegeName  string `json:"collegeName" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
}

type testDetailsRequest struct {
	UserID  *int64          `json:"userId" validate:"required"`
	Answers json.RawMessage `json:"answers"`
	Score   *string         `json:"score"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type emailConflictResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type questionsResponse struct {
	Total     int                   `json:"total"`
	Questions []quiz.PublicQuestion `json:"questions"`
}
