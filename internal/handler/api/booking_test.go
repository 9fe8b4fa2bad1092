//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/httptest"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

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

	// Stand-in for the auth middleware.
	asUser := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}

	s.router.POST("/bookings", asUser, s.handler.Create)
	s.router.POST("/bookings/:id/exit", asUser, s.handler.Exit)
	s.router.GET("/bookings/current", asUser, s.handler.Current)
	s.router.GET("/bookings/mine", asUser, s.handler.Mine)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingView(slotID uuid.UUID, active bool) *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		SlotID:    slotID,
		SlotCode:  "A1",
		UserID:    s.userID,
		UserEmail: "driver@example.com",
		StartTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Active:    active,
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	slotID := uuid.New()
	body := map[string]any{"slot_id": slotID.String()}

	s.Run("success: 201 with active booking", func() {
		view := s.bookingView(slotID, true)
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, slotID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("A1", response.SlotCode)
		s.Equal("Active", response.Status)
	})

	s.Run("error: 400 when slot is not vacant", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, slotID).
			Return(nil, commands.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not available")
	})

	s.Run("error: 400 when user already has an active booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, slotID).
			Return(nil, commands.ErrActiveBookingExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "active booking")
	})

	s.Run("error: 404 when slot does not exist", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, slotID).
			Return(nil, commands.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slot_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestExit() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/exit"

	s.Run("success: 200 with formatted receipt", func() {
		exitTime := time.Date(2025, 6, 1, 10, 40, 0, 0, time.UTC)
		s.mockCommands.EXPECT().End(gomock.Any(), bookingID).
			Return(&commands.ExitSummary{
				BookingID:       bookingID,
				SlotCode:        "A1",
				DurationMinutes: 40,
				BlocksUsed:      2,
				Fare:            50,
				EndTime:         exitTime,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ExitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal("40 minutes", response.Duration)
		s.Equal(int32(2), response.BlocksUsed)
		s.Equal("₹50", response.Fare)
		s.Equal("Payment Pending", response.Status)
	})

	s.Run("error: 400 when booking is already closed", func() {
		s.mockCommands.EXPECT().End(gomock.Any(), bookingID).
			Return(nil, commands.ErrBookingAlreadyClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already closed")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().End(gomock.Any(), bookingID).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/nope/exit", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestCurrent() {
	url := "/bookings/current"

	s.Run("success: 200 with the active booking", func() {
		view := s.bookingView(uuid.New(), true)
		s.mockQueries.EXPECT().Current(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response struct {
			Booking *resdto.BookingResponse `json:"booking"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Booking)
		s.Equal(view.ID, response.Booking.ID)
	})

	s.Run("success: 200 with null when no active booking", func() {
		s.mockQueries.EXPECT().Current(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response struct {
			Booking *resdto.BookingResponse `json:"booking"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Booking)
	})
}

func (s *BookingHandlerTestSuite) TestMine() {
	url := "/bookings/mine"

	s.Run("success: 200 with closed bookings labeled", func() {
		end := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
		fare := int32(50)
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingListItem{
				{ID: uuid.New(), SlotCode: "A1", UserEmail: "driver@example.com", StartTime: end.Add(-time.Hour), EndTime: &end, Fare: &fare, Active: false},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Payment Pending", response[0].Status)
	})
}
