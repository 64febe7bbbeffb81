package repository

import (
	"gorm.io/gorm"

	"planetarium/internal/model"
)

type ReservationRepo interface {
	WithTx(tx *gorm.DB) ReservationRepo
	Create(reservation *model.Reservation) error
	GetByID(id uint) (*model.Reservation, error)
	List(userID *uint, offset, limit int) ([]model.Reservation, int64, error)
	Delete(id uint) error
}

type reservationRepoGorm struct {
	db *gorm.DB
}

var _ ReservationRepo = (*reservationRepoGorm)(nil)

func NewReservationRepoGorm(db *gorm.DB) *reservationRepoGorm {
	return &reservationRepoGorm{
		db: db,
	}
}

func (r *reservationRepoGorm) WithTx(tx *gorm.DB) ReservationRepo {
	return &reservationRepoGorm{
		db: tx,
	}
}

func (r *reservationRepoGorm) Create(reservation *model.Reservation) error {
	return r.db.Omit("Tickets", "User").Create(reservation).Error
}

func (r *reservationRepoGorm) GetByID(id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	err := r.db.
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row", seat`)
		}).
		Preload("User").
		First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List returns reservations ordered by id, restricted to one user when
// userID is non-nil.
func (r *reservationRepoGorm) List(userID *uint, offset, limit int) ([]model.Reservation, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if userID != nil {
			return db.Where("user_id = ?", *userID)
		}
		return db
	}
	var total int64
	if err := scope(r.db.Model(&model.Reservation{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reservations []model.Reservation
	err := scope(r.db).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row", seat`)
		}).
		Preload("User").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// Delete removes the reservation and its tickets in one transaction.
func (r *reservationRepoGorm) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := NewTicketRepoGorm(tx).DeleteByReservation(id); err != nil {
			return err
		}
		return tx.Delete(&model.Reservation{}, id).Error
	})
}
