package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Spok95/admissions-site/internal/submission"
)

// fieldError is a request that failed shape validation.
type fieldError struct {
	Field   string
	Message string
}

func (e *fieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// messages keyed by "<jsonField>.<tag>", falling back to "<tag>".
var messages = map[string]string{
	"studentName.required":  "Student name must be at least 2 characters",
	"studentName.min":       "Student name must be at least 2 characters",
	"phoneNumber.required":  "Phone number is required",
	"phoneNumber.in_mobile": "Please enter a valid 10-digit mobile number starting with 6-9",
	"studentClass.required": "Class is required",
	"city.required":         "City must be at least 2 characters",
	"city.min":              "City must be at least 2 characters",
	"name.required":         "Name is required",
	"parentName.required":   "Parent name is required",
	"collegeName.required":  "College name is required",
	"mobileNumber.required": "Mobile number is required",
	"email.required":        "Email is required",
	"email.email":           "Please enter a valid email address",
	"userId.required":       "User ID is required",
	"required":              "Required",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("in_mobile", func(fl validator.FieldLevel) bool {
		_, err := submission.NormalizePhone(fl.Field().String())
		return err == nil
	})
	return v
}

// validateStruct returns the first failing field, in declaration order.
func (a *API) validateStruct(req any) error {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return &fieldError{Message: err.Error()}
	}
	fe := ve[0]
	msg, ok := messages[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg, ok = messages[fe.Tag()]
	}
	if !ok {
		msg = fmt.Sprintf("Invalid value (%s)", fe.Tag())
	}
	return &fieldError{Field: fe.Field(), Message: msg}
}

const maxBodyBytes = 1 << 20

// decodeJSON reads one JSON object; type mismatches name the offending field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr):
			return &fieldError{Field: typeErr.Field, Message: fmt.Sprintf("Expected %s", typeErr.Type.String())}
		case errors.As(err, &maxErr):
			return &fieldError{Message: "Request body too large"}
		case errors.Is(err, io.EOF):
			return &fieldError{Message: "Request body is required"}
		default:
			return &fieldError{Message: "Invalid JSON body"}
		}
	}
	return nil
}
