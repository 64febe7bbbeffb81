package repository

import (
	"gorm.io/gorm"

	"planetarium/internal/model"
)

type ShowRepo interface {
	WithTx(tx *gorm.DB) ShowRepo
	Create(show *model.AstronomyShow) error
	GetByID(id uint) (*model.AstronomyShow, error)
	List() ([]model.AstronomyShow, error)
	Update(show *model.AstronomyShow) error
	ReplaceThemes(show *model.AstronomyShow, themes []model.ShowTheme) error
	Delete(id uint) error
}

type showRepoGorm struct {
	db *gorm.DB
}

var _ ShowRepo = (*showRepoGorm)(nil)

func NewShowRepoGorm(db *gorm.DB) *showRepoGorm {
	return &showRepoGorm{
		db: db,
	}
}

func (r *showRepoGorm) WithTx(tx *gorm.DB) ShowRepo {
	return &showRepoGorm{
		db: tx,
	}
}

func (r *showRepoGorm) Create(show *model.AstronomyShow) error {
	return r.db.Create(show).Error
}

func (r *showRepoGorm) GetByID(id uint) (*model.AstronomyShow, error) {
	var show model.AstronomyShow
	if err := r.db.Preload("Themes").First(&show, id).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *showRepoGorm) List() ([]model.AstronomyShow, error) {
	var shows []model.AstronomyShow
	if err := r.db.Preload("Themes").Order("id").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepoGorm) Update(show *model.AstronomyShow) error {
	return r.db.Omit("Themes").Save(show).Error
}

func (r *showRepoGorm) ReplaceThemes(show *model.AstronomyShow, themes []model.ShowTheme) error {
	return r.db.Model(show).Association("Themes").Replace(themes)
}

func (r *showRepoGorm) Delete(id uint) error {
	return r.db.Select("Themes").Delete(&model.AstronomyShow{ID: id}).Error
}
