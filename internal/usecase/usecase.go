package usecase

import (
	"time"

	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the wire format admin forms submit dates in.
const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.BadRequest(field + " must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// validateInput runs struct validation before any write is attempted so
// a rejected form never reaches the store.
func validateInput(validate *validator.Validate, input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return nil
}
