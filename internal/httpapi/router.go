package httpapi

import "net/http"

func NewRouter(api *API) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, api.instrument(pattern, api.recoverPanics(h)))
	}
	handle("/api/bookings", api.HandleBookings)
	handle("/api/bookings/export", api.HandleBookingsExport)
	handle("/api/users/check-email", api.HandleCheckEmail)
	handle("/api/test-details", api.HandleTestDetails)
	handle("/api/test-details/export", api.HandleTestDetailsExport)
	handle("/api/questions", api.HandleQuestions)

	return withRequestID(mux)
}
