package repository

import (
	"gorm.io/gorm"

	"planetarium/internal/model"
)

type SessionRepo interface {
	WithTx(tx *gorm.DB) SessionRepo
	Create(session *model.ShowSession) error
	GetByID(id uint) (*model.ShowSession, error)
	List() ([]model.ShowSession, error)
	Update(session *model.ShowSession) error
	Delete(id uint) error
}

type sessionRepoGorm struct {
	db *gorm.DB
}

var _ SessionRepo = (*sessionRepoGorm)(nil)

func NewSessionRepoGorm(db *gorm.DB) *sessionRepoGorm {
	return &sessionRepoGorm{
		db: db,
	}
}

func (r *sessionRepoGorm) WithTx(tx *gorm.DB) SessionRepo {
	return &sessionRepoGorm{
		db: tx,
	}
}

func (r *sessionRepoGorm) Create(session *model.ShowSession) error {
	return r.db.Omit("AstronomyShow", "PlanetariumDome").Create(session).Error
}

func (r *sessionRepoGorm) GetByID(id uint) (*model.ShowSession, error) {
	var session model.ShowSession
	err := r.db.
		Preload("AstronomyShow.Themes").
		Preload("PlanetariumDome").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepoGorm) List() ([]model.ShowSession, error) {
	var sessions []model.ShowSession
	err := r.db.
		Preload("AstronomyShow.Themes").
		Preload("PlanetariumDome").
		Order("id").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepoGorm) Update(session *model.ShowSession) error {
	return r.db.Omit("AstronomyShow", "PlanetariumDome").Save(session).Error
}

func (r *sessionRepoGorm) Delete(id uint) error {
	return r.db.Delete(&model.ShowSession{}, id).Error
}
