package domain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planetarium/internal/cache"
	"planetarium/internal/model"
	"planetarium/internal/repository"
	"planetarium/internal/service"
)

// CatalogService covers the reference entities: themes, shows, domes.
// Reads go through the redis cache where possible; every write drops
// the affected keys.
type CatalogService interface {
	CreateTheme(theme *model.ShowTheme) error
	GetThemeByID(id uint) (*model.ShowTheme, error)
	ListThemes(nameFilter string) ([]model.ShowTheme, error)
	UpdateTheme(theme *model.ShowTheme) error
	DeleteTheme(id uint) error

	CreateShow(show *model.AstronomyShow, themeNames []string) error
	GetShowByID(id uint) (*model.AstronomyShow, error)
	ListShows() ([]model.AstronomyShow, error)
	UpdateShow(show *model.AstronomyShow, themeNames []string) error
	DeleteShow(id uint) error

	CreateDome(dome *model.PlanetariumDome) error
	GetDomeByID(id uint) (*model.PlanetariumDome, error)
	ListDomes() ([]model.PlanetariumDome, error)
	UpdateDome(dome *model.PlanetariumDome) error
	DeleteDome(id uint) error
}

type catalogService struct {
	db     *gorm.DB
	themes repository.ThemeRepo
	shows  repository.ShowRepo
	domes  repository.DomeRepo
	cache  *cache.RedisCache
	logger *zap.Logger
}

var _ CatalogService = (*catalogService)(nil)

func NewCatalogService(
	db *gorm.DB,
	themeRepo repository.ThemeRepo,
	showRepo repository.ShowRepo,
	domeRepo repository.DomeRepo,
	redisCache *cache.RedisCache,
	logger *zap.Logger,
) *catalogService {
	return &catalogService{
		db:     db,
		themes: themeRepo,
		shows:  showRepo,
		domes:  domeRepo,
		cache:  redisCache,
		logger: logger,
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}

/*
 * themes
 */

func (s *catalogService) CreateTheme(theme *model.ShowTheme) error {
	if err := s.themes.Create(theme); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return service.ErrAlreadyExists
		}
		return err
	}
	s.dropCatalogKeys(cache.ThemeListKey)
	return nil
}

func (s *catalogService) GetThemeByID(id uint) (*model.ShowTheme, error) {
	var cached model.ShowTheme
	if err := s.cache.Get(cache.MakeThemeKey(id), &cached); err == nil {
		return &cached, nil
	}
	theme, err := s.themes.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	s.fillCache(cache.MakeThemeKey(id), theme)
	return theme, nil
}

// ListThemes filters by case-insensitive substring of name. Only the
// unfiltered list is cached.
func (s *catalogService) ListThemes(nameFilter string) ([]model.ShowTheme, error) {
	if nameFilter == "" {
		var cached []model.ShowTheme
		if err := s.cache.Get(cache.ThemeListKey, &cached); err == nil {
			return cached, nil
		}
	}
	themes, err := s.themes.List(nameFilter)
	if err != nil {
		return nil, err
	}
	if nameFilter == "" {
		s.fillCache(cache.ThemeListKey, themes)
	}
	return themes, nil
}

func (s *catalogService) UpdateTheme(theme *model.ShowTheme) error {
	if _, err := s.themes.GetByID(theme.ID); err != nil {
		return notFoundOr(err)
	}
	if err := s.themes.Update(theme); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return service.ErrAlreadyExists
		}
		return err
	}
	s.dropCatalogKeys(cache.ThemeListKey, cache.MakeThemeKey(theme.ID), cache.ShowListKey)
	return nil
}

func (s *catalogService) DeleteTheme(id uint) error {
	if _, err := s.themes.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	if err := s.themes.Delete(id); err != nil {
		return err
	}
	s.dropCatalogKeys(cache.ThemeListKey, cache.MakeThemeKey(id), cache.ShowListKey)
	return nil
}

/*
 * shows
 */

func (s *catalogService) CreateShow(show *model.AstronomyShow, themeNames []string) error {
	themes, err := s.resolveThemes(themeNames)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.shows.WithTx(tx)
		if err := repo.Create(show); err != nil {
			return err
		}
		return repo.ReplaceThemes(show, themes)
	})
	if err != nil {
		return err
	}
	show.Themes = themes
	s.dropCatalogKeys(cache.ShowListKey)
	return nil
}

func (s *catalogService) GetShowByID(id uint) (*model.AstronomyShow, error) {
	var cached model.AstronomyShow
	if err := s.cache.Get(cache.MakeShowKey(id), &cached); err == nil {
		return &cached, nil
	}
	show, err := s.shows.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	s.fillCache(cache.MakeShowKey(id), show)
	return show, nil
}

func (s *catalogService) ListShows() ([]model.AstronomyShow, error) {
	var cached []model.AstronomyShow
	if err := s.cache.Get(cache.ShowListKey, &cached); err == nil {
		return cached, nil
	}
	shows, err := s.shows.List()
	if err != nil {
		return nil, err
	}
	s.fillCache(cache.ShowListKey, shows)
	return shows, nil
}

func (s *catalogService) UpdateShow(show *model.AstronomyShow, themeNames []string) error {
	if _, err := s.shows.GetByID(show.ID); err != nil {
		return notFoundOr(err)
	}
	themes, err := s.resolveThemes(themeNames)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.shows.WithTx(tx)
		if err := repo.Update(show); err != nil {
			return err
		}
		return repo.ReplaceThemes(show, themes)
	})
	if err != nil {
		return err
	}
	show.Themes = themes
	s.dropCatalogKeys(cache.ShowListKey, cache.MakeShowKey(show.ID))
	return nil
}

func (s *catalogService) DeleteShow(id uint) error {
	if _, err := s.shows.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	if err := s.shows.Delete(id); err != nil {
		return err
	}
	s.dropCatalogKeys(cache.ShowListKey, cache.MakeShowKey(id))
	return nil
}

// resolveThemes maps theme names to stored themes. Every name must
// already exist in the catalog.
func (s *catalogService) resolveThemes(names []string) ([]model.ShowTheme, error) {
	if len(names) == 0 {
		return []model.ShowTheme{}, nil
	}
	themes, err := s.themes.GetByNames(names)
	if err != nil {
		return nil, err
	}
	if len(themes) != len(names) {
		return nil, service.ErrNotFound
	}
	return themes, nil
}

/*
 * domes
 */

func (s *catalogService) CreateDome(dome *model.PlanetariumDome) error {
	if err := validateDomeGeometry(dome); err != nil {
		return err
	}
	if err := s.domes.Create(dome); err != nil {
		return err
	}
	s.dropCatalogKeys(cache.DomeListKey)
	return nil
}

func (s *catalogService) GetDomeByID(id uint) (*model.PlanetariumDome, error) {
	var cached model.PlanetariumDome
	if err := s.cache.Get(cache.MakeDomeKey(id), &cached); err == nil {
		return &cached, nil
	}
	dome, err := s.domes.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	s.fillCache(cache.MakeDomeKey(id), dome)
	return dome, nil
}

func (s *catalogService) ListDomes() ([]model.PlanetariumDome, error) {
	var cached []model.PlanetariumDome
	if err := s.cache.Get(cache.DomeListKey, &cached); err == nil {
		return cached, nil
	}
	domes, err := s.domes.List()
	if err != nil {
		return nil, err
	}
	s.fillCache(cache.DomeListKey, domes)
	return domes, nil
}

func (s *catalogService) UpdateDome(dome *model.PlanetariumDome) error {
	if err := validateDomeGeometry(dome); err != nil {
		return err
	}
	if _, err := s.domes.GetByID(dome.ID); err != nil {
		return notFoundOr(err)
	}
	if err := s.domes.Update(dome); err != nil {
		return err
	}
	s.dropCatalogKeys(cache.DomeListKey, cache.MakeDomeKey(dome.ID))
	return nil
}

func (s *catalogService) DeleteDome(id uint) error {
	if _, err := s.domes.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	if err := s.domes.Delete(id); err != nil {
		return err
	}
	s.dropCatalogKeys(cache.DomeListKey, cache.MakeDomeKey(id))
	return nil
}

func validateDomeGeometry(dome *model.PlanetariumDome) error {
	if dome.Rows < 1 || dome.SeatsInRow < 1 {
		return fmt.Errorf("%w: rows and seats_in_row must be positive", service.ErrInvalidInput)
	}
	return nil
}

func (s *catalogService) fillCache(key string, value any) {
	if err := s.cache.Set(key, value); err != nil {
		s.logger.Warn("failed to fill cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *catalogService) dropCatalogKeys(keys ...string) {
	if err := s.cache.Invalidate(keys...); err != nil {
		s.logger.Warn("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
