package request

import (
	"sync"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain formats to gin's validator as binding tags.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("flight_number", func(fl validator.FieldLevel) bool {
			return flight.IsValidNumber(fl.Field().String())
		})
		_ = v.RegisterValidation("confirmation_number", func(fl validator.FieldLevel) bool {
			return booking.IsValidConfirmationNumber(fl.Field().String())
		})
		_ = v.RegisterValidation("passenger_name", func(fl validator.FieldLevel) bool {
			return booking.IsValidPassengerName(fl.Field().String())
		})
	})
}
