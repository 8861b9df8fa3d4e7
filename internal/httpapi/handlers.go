package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Spok95/admissions-site/internal/ctxutil"
	"github.com/Spok95/admissions-site/internal/export"
	"github.com/Spok95/admissions-site/internal/models"
	"github.com/Spok95/admissions-site/internal/submission"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (a *API) HandleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listBookings(w, r)
	case http.MethodPost:
		a.createBooking(w, r)
	default:
		writeMethodNotAllowed(w, "GET, POST")
	}
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	req.StudentName = strings.TrimSpace(req.StudentName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.StudentClass = strings.TrimSpace(req.StudentClass)
	req.City = strings.TrimSpace(req.City)
	if err := a.validateStruct(req); err != nil {
		writeBadRequest(w, err)
		return
	}

	ctx := ctxutil.WithOp(r.Context(), "create_booking")
	b, err := a.service.CreateBooking(ctx, models.NewBooking{
		StudentName:  req.StudentName,
		PhoneNumber:  req.PhoneNumber,
		StudentClass: req.StudentClass,
		City:         req.City,
	})
	if err != nil {
		a.writeServiceError(w, r.WithContext(ctx), err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (a *API) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx := ctxutil.WithOp(r.Context(), "list_bookings")
	out, err := a.service.ListBookings(ctx)
	if err != nil {
		a.writeInternal(w, r.WithContext(ctx), err)
		return
	}
	if out == nil {
		out = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleCheckEmail registers the quiz participant. The name is historical:
// it checks the email and creates the user in one call.
func (a *API) HandleCheckEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	var req userRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.ParentName = strings.TrimSpace(req.ParentName)
	req.CollegeName = strings.TrimSpace(req.CollegeName)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validateStruct(req); err != nil {
		writeBadRequest(w, err)
		return
	}

	ctx := ctxutil.WithOp(r.Context(), "register_user")
	u, err := a.service.RegisterUser(ctx, models.NewUser{
		Name:         req.Name,
		ParentName:   req.ParentName,
		CollegeName:  req.CollegeName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
	})
	if errors.Is(err, submission.ErrEmailTaken) {
		writeJSON(w, http.StatusConflict, emailConflictResponse{
			Message: msgEmailTaken,
			Email:   submission.NormalizeEmail(req.Email),
		})
		return
	}
	if err != nil {
		a.writeServiceError(w, r.WithContext(ctx), err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (a *API) HandleTestDetails(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listTestDetails(w, r)
	case http.MethodPost:
		a.createTestDetails(w, r)
	default:
		writeMethodNotAllowed(w, "GET, POST")
	}
}

func (a *API) createTestDetails(w http.ResponseWriter, r *http.Request) {
	var req testDetailsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := a.validateStruct(req); err != nil {
		writeBadRequest(w, err)
		return
	}

	// an explicit null is the same as leaving answers out
	if bytes.Equal(bytes.TrimSpace(req.Answers), []byte("null")) {
		req.Answers = nil
	}

	ctx := ctxutil.WithOp(r.Context(), "create_test_details")
	t, err := a.service.CreateTestSubmission(ctx, *req.UserID, req.Answers, req.Score)
	if err != nil {
		a.writeServiceError(w, r.WithContext(ctx), err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (a *API) listTestDetails(w http.ResponseWriter, r *http.Request) {
	ctx := ctxutil.WithOp(r.Context(), "list_test_details")
	out, err := a.service.ListTestSubmissions(ctx)
	if err != nil {
		a.writeInternal(w, r.WithContext(ctx), err)
		return
	}
	if out == nil {
		out = []models.TestSubmissionWithUser{}
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleQuestions serves the bank without correct answers.
func (a *API) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	qs := a.bank.Public()
	writeJSON(w, http.StatusOK, questionsResponse{Total: len(qs), Questions: qs})
}

func (a *API) HandleBookingsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	ctx := ctxutil.WithOp(r.Context(), "export_bookings")
	r = r.WithContext(ctx)
	out, err := a.service.ListBookings(ctx)
	if err != nil {
		a.writeInternal(w, r, err)
		return
	}
	wb, err := export.BookingsWorkbook(out, a.loc)
	if err != nil {
		a.writeInternal(w, r, err)
		return
	}
	a.writeWorkbook(w, r, wb, "bookings")
}

func (a *API) HandleTestDetailsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	ctx := ctxutil.WithOp(r.Context(), "export_test_details")
	r = r.WithContext(ctx)
	out, err := a.service.ListTestSubmissions(ctx)
	if err != nil {
		a.writeInternal(w, r, err)
		return
	}
	wb, err := export.SubmissionsWorkbook(out, a.bank, a.loc)
	if err != nil {
		a.writeInternal(w, r, err)
		return
	}
	a.writeWorkbook(w, r, wb, "test_details")
}

// writeWorkbook buffers the file so a failure can still become a JSON 500.
func (a *API) writeWorkbook(w http.ResponseWriter, r *http.Request, wb *export.Workbook, kind string) {
	defer func() { _ = wb.Close() }()
	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		a.writeInternal(w, r, fmt.Errorf("write %s workbook: %w", kind, err))
		return
	}
	name := export.Filename(kind, a.now(), a.loc)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
