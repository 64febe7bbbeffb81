package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planetarium/internal/auth"
	"planetarium/internal/service/domain"
)

// bookingRequest accepts either a list of seats or a single (row,
// seat) pair; both shapes land in one reservation.
type bookingRequest struct {
	ShowSession uint                 `json:"show_session" binding:"required"`
	Seats       []domain.SeatRequest `json:"seats"`
	Row         int                  `json:"row"`
	Seat        int                  `json:"seat"`
}

func (req *bookingRequest) seatRequests() []domain.SeatRequest {
	if len(req.Seats) > 0 {
		return req.Seats
	}
	if req.Row != 0 || req.Seat != 0 {
		return []domain.SeatRequest{{Row: req.Row, Seat: req.Seat}}
	}
	return nil
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	reservation, err := h.app.BookingService.CreateBooking(auth.CallerID(c), req.ShowSession, req.seatRequests())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderReservation(reservation, true))
}

func (h *Handler) ListTickets(c *gin.Context) {
	page := parsePagination(c)
	tickets, total, err := h.app.ReservationService.ListTickets(page.Offset(), page.PageSize)
	if err != nil {
		h.writeError(c, err)
		return
	}
	results := make([]gin.H, 0, len(tickets))
	for i := range tickets {
		results = append(results, renderTicket(&tickets[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func (h *Handler) GetTicket(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	ticket, err := h.app.ReservationService.GetTicketByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderTicket(ticket))
}
