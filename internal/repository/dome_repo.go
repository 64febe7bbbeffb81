package repository

import (
	"context"

	"gorm.io/gorm"

	"planetarium/internal/model"
)

type DomeRepo interface {
	WithTx(tx *gorm.DB) DomeRepo
	Create(dome *model.PlanetariumDome) error
	GetByID(id uint) (*model.PlanetariumDome, error)
	List() ([]model.PlanetariumDome, error)
	Update(dome *model.PlanetariumDome) error
	Delete(id uint) error
}

type domeRepoGorm struct {
	db *gorm.DB
}

var _ DomeRepo = (*domeRepoGorm)(nil)

func NewDomeRepoGorm(db *gorm.DB) *domeRepoGorm {
	return &domeRepoGorm{
		db: db,
	}
}

func (r *domeRepoGorm) WithTx(tx *gorm.DB) DomeRepo {
	return &domeRepoGorm{
		db: tx,
	}
}

func (r *domeRepoGorm) Create(dome *model.PlanetariumDome) error {
	ctx := context.Background()
	if err := gorm.G[model.PlanetariumDome](r.db).Create(ctx, dome); err != nil {
		return err
	}
	return nil
}

func (r *domeRepoGorm) GetByID(id uint) (*model.PlanetariumDome, error) {
	ctx := context.Background()
	dome, err := gorm.G[model.PlanetariumDome](r.db).Where(&model.PlanetariumDome{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &dome, nil
}

func (r *domeRepoGorm) List() ([]model.PlanetariumDome, error) {
	var domes []model.PlanetariumDome
	if err := r.db.Order("id").Find(&domes).Error; err != nil {
		return nil, err
	}
	return domes, nil
}

func (r *domeRepoGorm) Update(dome *model.PlanetariumDome) error {
	return r.db.Save(dome).Error
}

func (r *domeRepoGorm) Delete(id uint) error {
	return r.db.Delete(&model.PlanetariumDome{}, id).Error
}
