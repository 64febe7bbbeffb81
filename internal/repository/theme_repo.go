package repository

import (
	"context"

	"gorm.io/gorm"

	"planetarium/internal/model"
)

type ThemeRepo interface {
	WithTx(tx *gorm.DB) ThemeRepo
	Create(theme *model.ShowTheme) error
	GetByID(id uint) (*model.ShowTheme, error)
	GetByNames(names []string) ([]model.ShowTheme, error)
	List(nameFilter string) ([]model.ShowTheme, error)
	Update(theme *model.ShowTheme) error
	Delete(id uint) error
}

type themeRepoGorm struct {
	db *gorm.DB
}

var _ ThemeRepo = (*themeRepoGorm)(nil)

func NewThemeRepoGorm(db *gorm.DB) *themeRepoGorm {
	return &themeRepoGorm{
		db: db,
	}
}

func (r *themeRepoGorm) WithTx(tx *gorm.DB) ThemeRepo {
	return &themeRepoGorm{
		db: tx,
	}
}

func (r *themeRepoGorm) Create(theme *model.ShowTheme) error {
	ctx := context.Background()
	if err := gorm.G[model.ShowTheme](r.db).Create(ctx, theme); err != nil {
		return err
	}
	return nil
}

func (r *themeRepoGorm) GetByID(id uint) (*model.ShowTheme, error) {
	ctx := context.Background()
	theme, err := gorm.G[model.ShowTheme](r.db).Where(&model.ShowTheme{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepoGorm) GetByNames(names []string) ([]model.ShowTheme, error) {
	var themes []model.ShowTheme
	if err := r.db.Where("name IN ?", names).Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

func (r *themeRepoGorm) List(nameFilter string) ([]model.ShowTheme, error) {
	var themes []model.ShowTheme
	q := r.db.Order("id")
	if nameFilter != "" {
		q = q.Where("name ILIKE ?", "%"+nameFilter+"%")
	}
	if err := q.Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

func (r *themeRepoGorm) Update(theme *model.ShowTheme) error {
	return r.db.Save(theme).Error
}

func (r *themeRepoGorm) Delete(id uint) error {
	return r.db.Delete(&model.ShowTheme{}, id).Error
}
