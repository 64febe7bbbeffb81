package mq

// Queue names and message definitions

// booking events queue
// deliver messages about committed bookings to downstream consumers
// (notification senders, analytics); nothing in this service consumes
// them
const (
	BookingCreatedQueue     = "booking.created"
	ReservationDeletedQueue = "reservation.deleted"
)

type BookingCreatedMessage struct {
	ReservationID uint       `json:"reservation_id"`
	ShowSessionID uint       `json:"show_session_id"`
	UserID        uint       `json:"user_id"`
	Seats         []SeatInfo `json:"seats"`
}

type SeatInfo struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type ReservationDeletedMessage struct {
	ReservationID uint `json:"reservation_id"`
	TicketCount   int  `json:"ticket_count"`
}
