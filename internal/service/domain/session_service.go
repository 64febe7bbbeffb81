package domain

import (
	"time"

	"planetarium/internal/model"
	"planetarium/internal/repository"
)

// SessionWithAvailability pairs a session with its live seat count.
// TicketsAvailable is derived at read time from the current ticket
// count; it is never persisted.
type SessionWithAvailability struct {
	Session          model.ShowSession
	TicketsAvailable int
}

type SessionService interface {
	CreateSession(showID, domeID *uint, showTime time.Time) (*model.ShowSession, error)
	GetSessionByID(id uint) (*SessionWithAvailability, error)
	ListSessions() ([]SessionWithAvailability, error)
	UpdateSession(id uint, showID, domeID *uint, showTime time.Time) (*model.ShowSession, error)
	DeleteSession(id uint) error
}

type sessionService struct {
	sessions repository.SessionRepo
	tickets  repository.TicketRepo
	shows    repository.ShowRepo
	domes    repository.DomeRepo
}

var _ SessionService = (*sessionService)(nil)

func NewSessionService(
	sessionRepo repository.SessionRepo,
	ticketRepo repository.TicketRepo,
	showRepo repository.ShowRepo,
	domeRepo repository.DomeRepo,
) *sessionService {
	return &sessionService{
		sessions: sessionRepo,
		tickets:  ticketRepo,
		shows:    showRepo,
		domes:    domeRepo,
	}
}

func (s *sessionService) CreateSession(showID, domeID *uint, showTime time.Time) (*model.ShowSession, error) {
	if err := s.checkReferences(showID, domeID); err != nil {
		return nil, err
	}
	session := &model.ShowSession{
		AstronomyShowID:   showID,
		PlanetariumDomeID: domeID,
		ShowTime:          showTime,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSessionByID(id uint) (*SessionWithAvailability, error) {
	session, err := s.sessions.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	count, err := s.tickets.CountBySession(session.ID)
	if err != nil {
		return nil, err
	}
	return &SessionWithAvailability{
		Session:          *session,
		TicketsAvailable: availableSeats(session.PlanetariumDome, count),
	}, nil
}

func (s *sessionService) ListSessions() ([]SessionWithAvailability, error) {
	sessions, err := s.sessions.List()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	counts, err := s.tickets.CountBySessions(ids)
	if err != nil {
		return nil, err
	}
	result := make([]SessionWithAvailability, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, SessionWithAvailability{
			Session:          session,
			TicketsAvailable: availableSeats(session.PlanetariumDome, counts[session.ID]),
		})
	}
	return result, nil
}

func (s *sessionService) UpdateSession(id uint, showID, domeID *uint, showTime time.Time) (*model.ShowSession, error) {
	session, err := s.sessions.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if err := s.checkReferences(showID, domeID); err != nil {
		return nil, err
	}
	session.AstronomyShowID = showID
	session.PlanetariumDomeID = domeID
	session.ShowTime = showTime
	session.AstronomyShow = nil
	session.PlanetariumDome = nil
	if err := s.sessions.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) DeleteSession(id uint) error {
	if _, err := s.sessions.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.sessions.Delete(id)
}

func (s *sessionService) checkReferences(showID, domeID *uint) error {
	if showID != nil {
		if _, err := s.shows.GetByID(*showID); err != nil {
			return notFoundOr(err)
		}
	}
	if domeID != nil {
		if _, err := s.domes.GetByID(*domeID); err != nil {
			return notFoundOr(err)
		}
	}
	return nil
}

// availableSeats is capacity minus sold tickets. A session whose dome
// reference was nulled has no sellable seats.
func availableSeats(dome *model.PlanetariumDome, sold int64) int {
	if dome == nil {
		return 0
	}
	return dome.Capacity() - int(sold)
}
