package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planetarium/internal/model"
)

type TicketRepo interface {
	WithTx(tx *gorm.DB) TicketRepo
	CreateBatch(tickets []model.Ticket) error
	GetByID(id uint) (*model.Ticket, error)
	List(offset, limit int) ([]model.Ticket, int64, error)
	ListBySessionLocked(sessionID uint) ([]model.Ticket, error)
	CountBySession(sessionID uint) (int64, error)
	CountBySessions(sessionIDs []uint) (map[uint]int64, error)
	DeleteByReservation(reservationID uint) error
}

type ticketRepoGorm struct {
	db *gorm.DB
}

var _ TicketRepo = (*ticketRepoGorm)(nil)

func NewTicketRepoGorm(db *gorm.DB) *ticketRepoGorm {
	return &ticketRepoGorm{
		db: db,
	}
}

func (r *ticketRepoGorm) WithTx(tx *gorm.DB) TicketRepo {
	return &ticketRepoGorm{
		db: tx,
	}
}

func (r *ticketRepoGorm) CreateBatch(tickets []model.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	return r.db.Create(&tickets).Error
}

func (r *ticketRepoGorm) GetByID(id uint) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.
		Preload("ShowSession.AstronomyShow").
		Preload("Reservation").
		First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepoGorm) List(offset, limit int) ([]model.Ticket, int64, error) {
	var total int64
	if err := r.db.Model(&model.Ticket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tickets []model.Ticket
	err := r.db.
		Preload("ShowSession.AstronomyShow").
		Preload("Reservation").
		Order(`"row", seat`).
		Offset(offset).
		Limit(limit).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// ListBySessionLocked reads the sold seats of a session under
// SELECT ... FOR UPDATE. Must run inside a transaction.
func (r *ticketRepoGorm) ListBySessionLocked(sessionID uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("show_session_id = ?", sessionID).
		Order(`"row", seat`).
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepoGorm) CountBySession(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Ticket{}).
		Where("show_session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (r *ticketRepoGorm) CountBySessions(sessionIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		ShowSessionID uint
		Count         int64
	}
	err := r.db.Model(&model.Ticket{}).
		Select("show_session_id, count(*) as count").
		Where("show_session_id IN ?", sessionIDs).
		Group("show_session_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ShowSessionID] = row.Count
	}
	return counts, nil
}

// DeleteByReservation removes every ticket of one reservation. Runs in
// the caller's transaction when reached via WithTx.
func (r *ticketRepoGorm) DeleteByReservation(reservationID uint) error {
	return r.db.Where("reservation_id = ?", reservationID).Delete(&model.Ticket{}).Error
}
