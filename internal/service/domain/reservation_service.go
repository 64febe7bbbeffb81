package domain

import (
	"go.uber.org/zap"

	"planetarium/internal/model"
	"planetarium/internal/mq"
	"planetarium/internal/repository"
	"planetarium/internal/service"
)

// ReservationService is the read/delete side of the ledger.
// Reservations are only ever created by the booking engine.
type ReservationService interface {
	ListReservations(callerID uint, isStaff bool, offset, limit int) ([]model.Reservation, int64, error)
	GetReservationByID(id uint, callerID uint, isStaff bool) (*model.Reservation, error)
	DeleteReservation(id uint, callerID uint, isStaff bool) error

	ListTickets(offset, limit int) ([]model.Ticket, int64, error)
	GetTicketByID(id uint) (*model.Ticket, error)
}

type reservationService struct {
	reservations repository.ReservationRepo
	tickets      repository.TicketRepo
	events       *mq.Publisher
	logger       *zap.Logger
}

var _ ReservationService = (*reservationService)(nil)

func NewReservationService(
	reservationRepo repository.ReservationRepo,
	ticketRepo repository.TicketRepo,
	events *mq.Publisher,
	logger *zap.Logger,
) *reservationService {
	return &reservationService{
		reservations: reservationRepo,
		tickets:      ticketRepo,
		events:       events,
		logger:       logger,
	}
}

// ListReservations scopes the list to the caller unless they are staff.
func (s *reservationService) ListReservations(callerID uint, isStaff bool, offset, limit int) ([]model.Reservation, int64, error) {
	var userID *uint
	if !isStaff {
		userID = &callerID
	}
	return s.reservations.List(userID, offset, limit)
}

func (s *reservationService) GetReservationByID(id uint, callerID uint, isStaff bool) (*model.Reservation, error) {
	reservation, err := s.reservations.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !isStaff && !ownedBy(reservation, callerID) {
		return nil, service.ErrForbidden
	}
	return reservation, nil
}

func (s *reservationService) DeleteReservation(id uint, callerID uint, isStaff bool) error {
	reservation, err := s.reservations.GetByID(id)
	if err != nil {
		return notFoundOr(err)
	}
	if !isStaff && !ownedBy(reservation, callerID) {
		return service.ErrForbidden
	}
	if err := s.reservations.Delete(id); err != nil {
		return err
	}
	s.logger.Info("reservation deleted",
		zap.Uint("reservation_id", id),
		zap.Int("tickets", len(reservation.Tickets)),
	)
	s.events.Publish(mq.ReservationDeletedQueue, mq.ReservationDeletedMessage{
		ReservationID: id,
		TicketCount:   len(reservation.Tickets),
	})
	return nil
}

func (s *reservationService) ListTickets(offset, limit int) ([]model.Ticket, int64, error) {
	return s.tickets.List(offset, limit)
}

func (s *reservationService) GetTicketByID(id uint) (*model.Ticket, error) {
	ticket, err := s.tickets.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return ticket, nil
}

func ownedBy(reservation *model.Reservation, userID uint) bool {
	return reservation.UserID != nil && *reservation.UserID == userID
}
