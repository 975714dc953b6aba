package api

import (
	"net/http"

	reqdto "flight-booking/internal/handler/dto/request"
	resdto "flight-booking/internal/handler/dto/response"
	"flight-booking/internal/handler/httperr"
	"flight-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	flights  queries.FlightQueries
	bookings queries.BookingQueries
}

func NewFlightHandler(flights queries.FlightQueries, bookings queries.BookingQueries) *FlightHandler {
	reqdto.RegisterValidators()
	return &FlightHandler{flights: flights, bookings: bookings}
}

// @Summary List flights
// @Description List every flight with its available seats
// @Tags flights
// @Produce json
// @Success 200 {array} resdto.FlightResponse
// @Failure 500 {object} httperr.Response
// @Router /api/flights [get]
func (h *FlightHandler) List(c *gin.Context) {
	views, err := h.flights.ListFlights(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Flight not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlightViews(views))
}

// @Summary Search flights
// @Description Search by flight number, or by departure and/or arrival city ordered by departure time
// @Tags flights
// @Produce json
// @Param from_city query string false "Departure city"
// @Param to_city query string false "Arrival city"
// @Param flight_number query string false "Flight number" example(FL1234)
// @Success 200 {array} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Router /api/flights/search [get]
func (h *FlightHandler) Search(c *gin.Context) {
	var req reqdto.SearchFlightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	views, err := h.flights.SearchFlights(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUsecaseError(c, err, "Flight not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlightViews(views))
}

// @Summary List bookings of a flight
// @Description Get a flight together with every booking made on it
// @Tags flights
// @Produce json
// @Param flight_number path string true "Flight number" example(FL1234)
// @Success 200 {object} resdto.FlightBookingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/flights/{flight_number}/bookings [get]
func (h *FlightHandler) Bookings(c *gin.Context) {
	var uri reqdto.FlightURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid flight number", err.Error())
		return
	}
	view, err := h.bookings.SearchBookingsByFlight(c.Request.Context(), uri.FlightNumber)
	if err != nil {
		abortWithUsecaseError(c, err, "Flight "+uri.FlightNumber+" not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlightBookingsView(view))
}
