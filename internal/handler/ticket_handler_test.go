package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"planetarium/internal/app"
	"planetarium/internal/auth"
	"planetarium/internal/model"
	"planetarium/internal/service"
	"planetarium/internal/service/domain"
)

type fakeBookingService struct {
	reservation *model.Reservation
	err         error

	gotUserID    uint
	gotSessionID uint
	gotSeats     []domain.SeatRequest
}

func (f *fakeBookingService) CreateBooking(userID uint, sessionID uint, seats []domain.SeatRequest) (*model.Reservation, error) {
	f.gotUserID = userID
	f.gotSessionID = sessionID
	f.gotSeats = seats
	if f.err != nil {
		return nil, f.err
	}
	return f.reservation, nil
}

func bookingRouter(t *testing.T, booking *fakeBookingService, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(&app.App{
		Logger:         zap.NewNop(),
		BookingService: booking,
	})
	r := gin.New()
	r.POST("/ticket", func(c *gin.Context) {
		if userID != 0 {
			c.Set(auth.ContextUserID, userID)
		}
		h.CreateBooking(c)
	})
	return r
}

func postBooking(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ticket", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingSuccess(t *testing.T) {
	booking := &fakeBookingService{
		reservation: &model.Reservation{
			ID:        12,
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Tickets: []model.Ticket{
				{ID: 1, Row: 2, Seat: 3},
				{ID: 2, Row: 2, Seat: 4},
			},
		},
	}
	r := bookingRouter(t, booking, 7)

	w := postBooking(r, `{"show_session": 3, "seats": [{"row": 2, "seat": 3}, {"row": 2, "seat": 4}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), booking.gotUserID)
	assert.Equal(t, uint(3), booking.gotSessionID)
	require.Len(t, booking.gotSeats, 2)
	assert.Contains(t, w.Body.String(), `"tickets"`)
	assert.Contains(t, w.Body.String(), `"id":12`)
}

func TestCreateBookingSingleSeatShape(t *testing.T) {
	booking := &fakeBookingService{reservation: &model.Reservation{ID: 1}}
	r := bookingRouter(t, booking, 7)

	w := postBooking(r, `{"show_session": 3, "row": 2, "seat": 5}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, booking.gotSeats, 1)
	assert.Equal(t, domain.SeatRequest{Row: 2, Seat: 5}, booking.gotSeats[0])
}

func TestCreateBookingAnonymous(t *testing.T) {
	booking := &fakeBookingService{err: service.ErrUnauthenticated}
	r := bookingRouter(t, booking, 0)

	w := postBooking(r, `{"show_session": 3, "row": 1, "seat": 1}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, uint(0), booking.gotUserID)
}

func TestCreateBookingBadJSON(t *testing.T) {
	booking := &fakeBookingService{}
	r := bookingRouter(t, booking, 7)

	w := postBooking(r, `{"show_session": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingSeatOutOfRange(t *testing.T) {
	booking := &fakeBookingService{
		err: &service.ValidationError{Field: "seat", RangeName: "seats_in_row", Max: 10},
	}
	r := bookingRouter(t, booking, 7)

	w := postBooking(r, `{"show_session": 3, "row": 1, "seat": 11}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"seat"`)
	assert.Contains(t, w.Body.String(), "seat number must be in available range: (1, seats_in_row): (1, 10)")
}

func TestCreateBookingSeatTaken(t *testing.T) {
	booking := &fakeBookingService{err: service.ErrSeatTaken}
	r := bookingRouter(t, booking, 7)

	w := postBooking(r, `{"show_session": 3, "row": 1, "seat": 1}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingUnknownSession(t *testing.T) {
	booking := &fakeBookingService{err: service.ErrNotFound}
	r := bookingRouter(t, booking, 7)

	w := postBooking(r, `{"show_session": 99, "row": 1, "seat": 1}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
