package model

import (
	"fmt"
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsStaff        bool   `gorm:"not null;default:false" json:"is_staff"`
}

type ShowTheme struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}

type AstronomyShow struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Themes      []ShowTheme `gorm:"many2many:astronomy_show_themes" json:"themes,omitempty"`
}

type PlanetariumDome struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Rows       int    `gorm:"not null" json:"rows"`
	SeatsInRow int    `gorm:"not null" json:"seats_in_row"`
}

// Capacity is derived, never stored.
func (d *PlanetariumDome) Capacity() int {
	return d.Rows * d.SeatsInRow
}

// ShowSession binds one show to one dome at one time. Both references
// are nulled when the referenced row is deleted; the session itself
// survives.
type ShowSession struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	AstronomyShowID   *uint            `gorm:"index" json:"astronomy_show_id"`
	AstronomyShow     *AstronomyShow   `gorm:"constraint:OnDelete:SET NULL" json:"astronomy_show,omitempty"`
	PlanetariumDomeID *uint            `gorm:"index" json:"planetarium_dome_id"`
	PlanetariumDome   *PlanetariumDome `gorm:"constraint:OnDelete:SET NULL" json:"planetarium_dome,omitempty"`
	ShowTime          time.Time        `json:"show_time"`
}

// String renders the session the way ticket listings display it.
func (s *ShowSession) String() string {
	title := "?"
	if s.AstronomyShow != nil {
		title = s.AstronomyShow.Title
	}
	return fmt.Sprintf("%s %s", title, s.ShowTime.UTC().Format(time.RFC3339))
}

// Reservation groups the tickets created by a single booking call.
// CreatedAt is set once at creation. The user reference is nulled if
// the account is deleted; tickets die with their reservation.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Tickets   []Ticket  `json:"tickets,omitempty"`
}

// Ticket claims one seat of one session. The composite unique index on
// (show_session_id, row, seat) is the serialization point for
// concurrent bookings: the losing transaction aborts on commit.
type Ticket struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Row           int          `gorm:"not null;uniqueIndex:idx_session_seat,priority:2" json:"row"`
	Seat          int          `gorm:"not null;uniqueIndex:idx_session_seat,priority:3" json:"seat"`
	ShowSessionID *uint        `gorm:"uniqueIndex:idx_session_seat,priority:1" json:"show_session_id"`
	ShowSession   *ShowSession `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	ReservationID uint         `gorm:"not null;index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
