package domain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planetarium/internal/model"
	"planetarium/internal/mq"
	"planetarium/internal/repository"
	"planetarium/internal/service"
)

// SeatRequest is one requested seat coordinate.
type SeatRequest struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// BookingService is the booking engine. CreateBooking groups every
// requested seat of one session into a single reservation, all inside
// one database transaction. Any failed seat rejects the whole request.
type BookingService interface {
	CreateBooking(userID uint, sessionID uint, seats []SeatRequest) (*model.Reservation, error)
}

type bookingService struct {
	db           *gorm.DB
	sessions     repository.SessionRepo
	tickets      repository.TicketRepo
	reservations repository.ReservationRepo
	events       *mq.Publisher
	logger       *zap.Logger
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(
	db *gorm.DB,
	sessionRepo repository.SessionRepo,
	ticketRepo repository.TicketRepo,
	reservationRepo repository.ReservationRepo,
	events *mq.Publisher,
	logger *zap.Logger,
) *bookingService {
	return &bookingService{
		db:           db,
		sessions:     sessionRepo,
		tickets:      ticketRepo,
		reservations: reservationRepo,
		events:       events,
		logger:       logger,
	}
}

func (s *bookingService) CreateBooking(userID uint, sessionID uint, seats []SeatRequest) (*model.Reservation, error) {
	if userID == 0 {
		return nil, service.ErrUnauthenticated
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat is required", service.ErrInvalidInput)
	}

	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if session.PlanetariumDome == nil {
		return nil, fmt.Errorf("%w: session has no dome", service.ErrNotFound)
	}

	// All validation happens before anything is persisted.
	if err := validateSeats(session.PlanetariumDome, seats); err != nil {
		return nil, err
	}

	var reservation *model.Reservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the session's sold seats so the check below and the
		// inserts form one serialization point. The unique index on
		// (show_session_id, row, seat) is the backstop for races that
		// slip past the lock.
		sold, err := s.tickets.WithTx(tx).ListBySessionLocked(session.ID)
		if err != nil {
			return err
		}
		for _, req := range seats {
			for _, t := range sold {
				if t.Row == req.Row && t.Seat == req.Seat {
					return fmt.Errorf("seat (%d, %d): %w", req.Row, req.Seat, service.ErrSeatTaken)
				}
			}
		}

		reservation = &model.Reservation{UserID: &userID}
		if err := s.reservations.WithTx(tx).Create(reservation); err != nil {
			return err
		}

		tickets := make([]model.Ticket, 0, len(seats))
		for _, req := range seats {
			tickets = append(tickets, model.Ticket{
				Row:           req.Row,
				Seat:          req.Seat,
				ShowSessionID: &session.ID,
				ReservationID: reservation.ID,
			})
		}
		if err := s.tickets.WithTx(tx).CreateBatch(tickets); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("booking lost the race: %w", service.ErrSeatTaken)
			}
			return err
		}
		reservation.Tickets = tickets
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Uint("reservation_id", reservation.ID),
		zap.Uint("session_id", session.ID),
		zap.Uint("user_id", userID),
		zap.Int("seats", len(seats)),
	)
	s.publishBookingCreated(reservation, session.ID, userID, seats)

	return reservation, nil
}

// validateSeats checks every requested coordinate against the dome
// geometry and rejects duplicates inside the request itself.
func validateSeats(dome *model.PlanetariumDome, seats []SeatRequest) error {
	seen := make(map[SeatRequest]struct{}, len(seats))
	for _, req := range seats {
		if req.Row < 1 || req.Row > dome.Rows {
			return &service.ValidationError{Field: "row", RangeName: "rows", Max: dome.Rows}
		}
		if req.Seat < 1 || req.Seat > dome.SeatsInRow {
			return &service.ValidationError{Field: "seat", RangeName: "seats_in_row", Max: dome.SeatsInRow}
		}
		if _, dup := seen[req]; dup {
			return fmt.Errorf("seat (%d, %d) requested twice: %w", req.Row, req.Seat, service.ErrSeatTaken)
		}
		seen[req] = struct{}{}
	}
	return nil
}

func (s *bookingService) publishBookingCreated(reservation *model.Reservation, sessionID, userID uint, seats []SeatRequest) {
	seatInfos := make([]mq.SeatInfo, 0, len(seats))
	for _, req := range seats {
		seatInfos = append(seatInfos, mq.SeatInfo{Row: req.Row, Seat: req.Seat})
	}
	s.events.Publish(mq.BookingCreatedQueue, mq.BookingCreatedMessage{
		ReservationID: reservation.ID,
		ShowSessionID: sessionID,
		UserID:        userID,
		Seats:         seatInfos,
	})
}
