package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"planetarium/internal/model"
	"planetarium/internal/service/domain"
)

// ViewIntent selects the serialization shape for an entity. The shape
// is a function of the operation kind only, never of caller identity.
type ViewIntent int

const (
	ViewList ViewIntent = iota
	ViewDetail
	ViewWrite
)

const createdAtLayout = "2006-01-02 15:04:05"

func themeNames(themes []model.ShowTheme) []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

func renderShow(show *model.AstronomyShow, intent ViewIntent) gin.H {
	if intent == ViewList {
		// short summary used inside session listings
		return gin.H{
			"title":  show.Title,
			"themes": strings.Join(themeNames(show.Themes), ", "),
		}
	}
	return gin.H{
		"id":          show.ID,
		"title":       show.Title,
		"description": show.Description,
		"themes":      themeNames(show.Themes),
	}
}

func renderDome(dome *model.PlanetariumDome, intent ViewIntent) gin.H {
	if intent == ViewList {
		return gin.H{
			"name":     dome.Name,
			"capacity": dome.Capacity(),
		}
	}
	return gin.H{
		"id":           dome.ID,
		"name":         dome.Name,
		"rows":         dome.Rows,
		"seats_in_row": dome.SeatsInRow,
		"capacity":     dome.Capacity(),
	}
}

// renderSession serves the three session shapes: list (short
// summaries + availability), detail (full show and dome), write (raw
// references).
func renderSession(sa *domain.SessionWithAvailability, intent ViewIntent) gin.H {
	session := sa.Session
	out := gin.H{
		"id":        session.ID,
		"show_time": session.ShowTime.UTC().Format(time.RFC3339),
	}
	switch intent {
	case ViewWrite:
		out["astronomy_show"] = session.AstronomyShowID
		out["planetarium_dome"] = session.PlanetariumDomeID
	case ViewList:
		out["tickets_available"] = sa.TicketsAvailable
		out["astronomy_show"] = renderOptShow(session.AstronomyShow, ViewList)
		out["planetarium_dome"] = renderOptDome(session.PlanetariumDome, ViewList)
	case ViewDetail:
		out["tickets_available"] = sa.TicketsAvailable
		out["astronomy_show"] = renderOptShow(session.AstronomyShow, ViewDetail)
		out["planetarium_dome"] = renderOptDome(session.PlanetariumDome, ViewDetail)
	}
	return out
}

func renderOptShow(show *model.AstronomyShow, intent ViewIntent) any {
	if show == nil {
		return nil
	}
	return renderShow(show, intent)
}

func renderOptDome(dome *model.PlanetariumDome, intent ViewIntent) any {
	if dome == nil {
		return nil
	}
	return renderDome(dome, intent)
}

// renderReservation includes the ticket list only for ledger views
// that ask for it; a reservation embedded in a ticket stays flat.
func renderReservation(reservation *model.Reservation, withTickets bool) gin.H {
	out := gin.H{
		"id":         reservation.ID,
		"created_at": reservation.CreatedAt.UTC().Format(createdAtLayout),
	}
	if reservation.User != nil {
		out["user"] = reservation.User.Email
	} else {
		out["user"] = nil
	}
	if withTickets {
		tickets := make([]gin.H, 0, len(reservation.Tickets))
		for i := range reservation.Tickets {
			t := &reservation.Tickets[i]
			tickets = append(tickets, gin.H{
				"id":   t.ID,
				"row":  t.Row,
				"seat": t.Seat,
			})
		}
		out["tickets"] = tickets
	}
	return out
}

// renderTicket shows the session as a display string and the owning
// reservation in full.
func renderTicket(ticket *model.Ticket) gin.H {
	out := gin.H{
		"id":   ticket.ID,
		"row":  ticket.Row,
		"seat": ticket.Seat,
	}
	if ticket.ShowSession != nil {
		out["show_session"] = ticket.ShowSession.String()
	} else {
		out["show_session"] = nil
	}
	if ticket.Reservation != nil {
		out["reservation"] = renderReservation(ticket.Reservation, false)
	}
	return out
}
