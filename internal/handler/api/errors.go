package api

import (
	"net/http"

	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/handler/httperr"
	"flight-booking/internal/pkg/errs"
	"flight-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps an engine or query error to its HTTP status.
// Seat conflicts surface the engine message since it names the seats involved.
func abortWithUsecaseError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMsg, nil)
	case errs.Is(err, errs.ErrInvalidRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, inventory.ErrNoSeatsAvailable),
		errs.Is(err, inventory.ErrInsufficientSeats),
		errs.Is(err, inventory.ErrSeatNotBooked),
		errs.Is(err, inventory.ErrSeatNotAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, commands.ErrConfirmationPoolExhausted):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "No confirmation numbers available", nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking changed concurrently, retry the request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
