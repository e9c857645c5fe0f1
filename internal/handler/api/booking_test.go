//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/user"
	"bookwise/internal/handler/api"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"
	"bookwise/tests/common/builder"
	"bookwise/tests/common/httptest"
	"bookwise/tests/common/testutil"
	commandsmock "bookwise/tests/mock/commands"
	queriesmock "bookwise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/bookings/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/bookings/:id/check-out", authMiddleware, s.handler.CheckOut)
	s.router.POST("/bookings/:id/no-show", authMiddleware, s.handler.MarkNoShow)
	s.router.GET("/establishments/:id/bookings", authMiddleware, s.handler.ListByEstablishment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.TotalPriceCents, response.TotalPriceCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: service_id (required)", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil)},
			{name: "quantity below minimum (0)", mutate: testutil.Field("quantity", 0)},
			{name: "malformed service_id", mutate: testutil.Field("service_id", "not-a-uuid")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				commandsError:  errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "slot not found",
				commandsError:  errs.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Availability slot not found",
			},
			{
				name:           "service inactive",
				commandsError:  errs.ErrServiceInactive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Service is inactive",
			},
			{
				name:           "capacity exhausted",
				commandsError:  errs.ErrCapacityExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No available capacity",
			},
			{
				name:           "room unavailable",
				commandsError:  errs.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room unavailable",
			},
			{
				name:           "slot belongs to another service",
				commandsError:  errs.ErrSlotMismatch,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "does not belong",
			},
			{
				name:           "check-in in the past",
				commandsError:  booking.ErrCheckInPast,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Check-in date is in the past",
			},
			{
				name:           "stay validation",
				commandsError:  booking.ErrMissingStayDate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "domain validation",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				// Marked store failures must not leak a business status.
				name: "marked store failure",
				commandsError: errs.Mark(
					infra.WrapRepoErr("failed to insert booking", errors.New("connection reset"), infra.KindDBFailure),
					errs.ErrDatabaseOperationFailed,
				),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.ServiceName, response.ServiceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for foreign booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns own bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItemQuery(),
			builder.NewBookingBuilder().BuildListItemQuery(),
		}
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.userID).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *BookingHandlerTestSuite) TestListByEstablishment() {
	establishmentID := uuid.New()
	url := "/establishments/" + establishmentID.String() + "/bookings"

	s.Run("success: returns establishment bookings", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItemQuery()}
		s.mockQueries.EXPECT().ListByEstablishment(gomock.Any(), establishmentID, s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 403 Forbidden for non-member", func() {
		s.mockQueries.EXPECT().ListByEstablishment(gomock.Any(), establishmentID, s.userID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	returnView := builder.NewBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID
	returnView.Status = "CANCELLED"

	s.Run("success: cancels with a reason", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, reason *string) (*queries.BookingView, error) {
				s.Require().NotNil(reason)
				s.Equal("plans changed", *reason)
				return returnView, nil
			}).Times(1)

		body := map[string]any{"reason": "plans changed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CANCELLED", response.Status)
	})

	s.Run("success: cancels without a body", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, nil).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 Conflict for terminal booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, nil).
			Return(nil, booking.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Illegal booking state transition")
	})

	s.Run("error: 403 Forbidden for stranger", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, nil).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestTransitionEndpoints() {
	bookingID := uuid.New()
	base := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID

	s.Run("confirm delegates to the command", func() {
		returnView.Status = "CONFIRMED"
		s.mockCommands.EXPECT().Confirm(gomock.Any(), bookingID, s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("check-in conflict for pending booking", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), bookingID, s.userID).
			Return(nil, booking.ErrNotConfirmed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/check-in", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Illegal booking state transition")
	})

	s.Run("check-out on standard bookings is rejected", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), bookingID, s.userID).
			Return(nil, errs.ErrHotelOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/check-out", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "hotel bookings")
	})

	s.Run("no-show not found", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), bookingID, s.userID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/no-show", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("invalid id short-circuits before the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
