package httpapi

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Spok95/admissions-site/internal/quiz"
	"github.com/Spok95/admissions-site/internal/submission"
)

type API struct {
	service  *submission.Service
	bank     *quiz.Bank
	log      *zap.Logger
	loc      *time.Location
	validate *validator.Validate
	now      func() time.Time
}

// NewAPI fills in a fresh bank, a no-op logger and UTC when given nil.
func NewAPI(service *submission.Service, bank *quiz.Bank, log *zap.Logger, loc *time.Location) *API {
	if bank == nil {
		bank = quiz.NewBank()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &API{
		service:  service,
		bank:     bank,
		log:      log,
		loc:      loc,
		validate: newValidator(),
		now:      time.Now,
	}
}
