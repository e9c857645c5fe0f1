package api

import (
	"errors"
	"net/http"

	"bookwise/internal/domain/booking"
	reqdto "bookwise/internal/handler/dto/request"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/handler/httperr"
	"bookwise/internal/handler/middleware"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a booking against a slot (standard services) or a stay (hotel services)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID (owner or establishment staff)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List bookings of the authenticated customer
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListOwn(c.Request.Context(), userID)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	resp := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List establishment bookings
// @Description List bookings of an establishment (staff only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /establishments/{id}/bookings [get]
func (h *BookingHandler) ListByEstablishment(c *gin.Context) {
	establishmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid establishment id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByEstablishment(c.Request.Context(), establishmentID, userID)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	resp := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Description Cancel a booking, returning its slot capacity and room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancel request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
		var req reqdto.CancelBookingRequest
		if ctx.Request.ContentLength > 0 {
			if err := ctx.ShouldBindJSON(&req); err != nil {
				return nil, errs.ErrDomainValidation
			}
		}
		return h.cmds.Cancel(ctx.Request.Context(), id, userID, req.GetReason())
	})
}

// @Summary Confirm booking
// @Description Confirm a pending booking (staff only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
		return h.cmds.Confirm(ctx.Request.Context(), id, userID)
	})
}

// @Summary Check in booking
// @Description Check a hotel booking in (staff only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
		return h.cmds.CheckIn(ctx.Request.Context(), id, userID)
	})
}

// @Summary Check out booking
// @Description Check a hotel booking out, releasing its room (staff only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/check-out [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
		return h.cmds.CheckOut(ctx.Request.Context(), id, userID)
	})
}

// @Summary Mark booking no-show
// @Description Mark a hotel booking as no-show, releasing its room (staff only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/no-show [post]
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
		return h.cmds.MarkNoShow(ctx.Request.Context(), id, userID)
	})
}

func (h *BookingHandler) transition(c *gin.Context, fn func(c *gin.Context, id, userID uuid.UUID) (*queries.BookingView, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := fn(c, id, userID)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// abortWithBookingError maps usecase and domain sentinels onto the HTTP error
// taxonomy: 404 unknown collaborator, 409 state conflict, 403 authorization,
// 422 validation.
func abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Availability slot not found", nil)
	case errors.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, errs.ErrExtraNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Extra not found", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, errs.ErrServiceInactive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Service is inactive", nil)
	case errors.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "No available capacity", nil)
	case errors.Is(err, errs.ErrRoomUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room unavailable for requested dates", nil)
	case errors.Is(err, errs.ErrSlotMismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, "Availability slot does not belong to service", nil)
	case errors.Is(err, errs.ErrExtraOverMax):
		httperr.AbortWithError(c, http.StatusConflict, err, "Extra quantity exceeds maximum", nil)
	case errors.Is(err, errs.ErrHotelOnly):
		httperr.AbortWithError(c, http.StatusConflict, err, "Operation only valid for hotel bookings", nil)
	case errors.Is(err, booking.ErrCheckInPast):
		httperr.AbortWithError(c, http.StatusConflict, err, "Check-in date is in the past", nil)
	case isTransitionError(err):
		httperr.AbortWithError(c, http.StatusConflict, err, "Illegal booking state transition", nil)
	case isStayValidationError(err), errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func isTransitionError(err error) bool {
	for _, target := range []error{
		booking.ErrAlreadyConfirmed,
		booking.ErrAlreadyCancelled,
		booking.ErrAlreadyCheckedIn,
		booking.ErrAlreadyNoShow,
		booking.ErrCheckedOut,
		booking.ErrNoShowBooking,
		booking.ErrNotConfirmed,
		booking.ErrNotCheckedIn,
		booking.ErrCheckedInCancel,
		booking.ErrCheckedInNoShow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isStayValidationError(err error) bool {
	for _, target := range []error{
		booking.ErrInvalidStay,
		booking.ErrStayTooShort,
		booking.ErrMissingStayDate,
		booking.ErrInvalidQuantity,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
