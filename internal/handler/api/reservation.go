package api

import (
	"errors"
	"net/http"
	"strconv"

	"sportfields/internal/domain/reservation"
	reqdto "sportfields/internal/handler/dto/request"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/internal/handler/httperr"
	"sportfields/internal/handler/middleware"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
	availabilityQueries queries.AvailabilityQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Book a slot
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.MakeReservationRequest true "Reservation"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /make-reservation [post]
func (h *ReservationHandler) MakeReservation(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errForbidden, "Authentication required.")
		return
	}

	var req reqdto.MakeReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	_, err := h.reservationCommands.CreateReservation(c.Request.Context(), username, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrPastDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Nu poti face rezervari pentru zilele din trecut!")
		case errors.Is(err, reservation.ErrPastStart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Nu poti face rezervari inainte de ora de astazi!")
		case errors.Is(err, reservation.ErrInvalidDate),
			errors.Is(err, reservation.ErrInvalidTime),
			errors.Is(err, reservation.ErrInvalidInterval),
			errors.Is(err, reservation.ErrTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		case errors.Is(err, commands.ErrFieldMissing):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found.")
		case errors.Is(err, commands.ErrFieldNotBookable), errors.Is(err, commands.ErrOutsideSchedule):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Field is not available at this hour.")
		case errors.Is(err, commands.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "This slot was just booked by someone else.")
		case errors.Is(err, commands.ErrDailyLimitReached):
			httperr.AbortWithError(c, http.StatusConflict, err, "You can make at most 3 reservations per day.")
		case errors.Is(err, commands.ErrFieldAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "You already booked this field for that day.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error making reservation.")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservation made successfully!"))
}

// @Summary Cancel a reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cancel-reservation/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errForbidden, "Authentication required.")
		return
	}

	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id")
		return
	}

	if err := h.reservationCommands.CancelReservation(c.Request.Context(), username, reservationID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationMissing):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found.")
		case errors.Is(err, commands.ErrCancelNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You cannot cancel this reservation.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error canceling reservation.")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reservation canceled successfully!"))
}

// @Summary List a user's reservations
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} resdto.ReservationsResponse
// @Router /get-reservations/{username} [get]
func (h *ReservationHandler) GetReservations(c *gin.Context) {
	views, err := h.reservationQueries.ListByUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}
	c.JSON(http.StatusOK, resdto.NewReservationsResponse(views))
}

// @Summary List a field's reservations
// @Tags reservations
// @Produce json
// @Param id_teren path int true "Field ID"
// @Success 200 {object} resdto.ReservationsResponse
// @Router /get-field-reservations/{id_teren} [get]
func (h *ReservationHandler) GetFieldReservations(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id_teren"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid field id")
		return
	}

	views, err := h.reservationQueries.ListByField(c.Request.Context(), fieldID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reservations.")
		return
	}
	c.JSON(http.StatusOK, resdto.NewReservationsResponse(views))
}

// @Summary Reservations of a user on a given date
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param username query string true "Username"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservationResultResponse
// @Router /get-user-reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	username := c.Query("username")
	date := c.Query("date")
	if username == "" || date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errForbidden, "Missing username or date")
		return
	}

	views, err := h.reservationQueries.ListByUserOnDate(c.Request.Context(), username, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}
	c.JSON(http.StatusOK, resdto.NewReservationResultResponse(views))
}

// @Summary Reservations of a user on a field for a given date
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param username query string true "Username"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param fieldId query int true "Field ID"
// @Success 200 {object} resdto.ReservationResultResponse
// @Router /get-user-reservations-for-field [get]
func (h *ReservationHandler) GetUserReservationsForField(c *gin.Context) {
	username := c.Query("username")
	date := c.Query("date")
	fieldID, err := strconv.ParseInt(c.Query("fieldId"), 10, 64)
	if err != nil || username == "" || date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errForbidden, "Missing username, date or fieldId")
		return
	}

	views, err := h.reservationQueries.ListByUserFieldDate(c.Request.Context(), username, fieldID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}
	c.JSON(http.StatusOK, resdto.NewReservationResultResponse(views))
}

// @Summary Hour-by-hour availability of a field on a date
// @Tags reservations
// @Produce json
// @Param id_teren path int true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /get-field-availability/{id_teren} [get]
func (h *ReservationHandler) GetFieldAvailability(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id_teren"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid field id")
		return
	}

	date := c.Query("date")
	if date == "" {
		date = todayVenueDate()
	}

	view, err := h.availabilityQueries.Grid(c.Request.Context(), fieldID, date)
	if err != nil {
		if errors.Is(err, queries.ErrFieldNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}
	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(view))
}
