package app

import (
	"planetarium/config"
	"planetarium/internal/cache"
	"planetarium/internal/model"
	"planetarium/internal/mq"
	"planetarium/internal/repository"
	"planetarium/internal/service/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	UserRepo        repository.UserRepo
	ThemeRepo       repository.ThemeRepo
	ShowRepo        repository.ShowRepo
	DomeRepo        repository.DomeRepo
	SessionRepo     repository.SessionRepo
	TicketRepo      repository.TicketRepo
	ReservationRepo repository.ReservationRepo

	CatalogService     domain.CatalogService
	SessionService     domain.SessionService
	BookingService     domain.BookingService
	ReservationService domain.ReservationService
}

func New(config *config.Config, db *gorm.DB, redisCache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	userRepo := repository.NewUserRepoGorm(db)
	themeRepo := repository.NewThemeRepoGorm(db)
	showRepo := repository.NewShowRepoGorm(db)
	domeRepo := repository.NewDomeRepoGorm(db)
	sessionRepo := repository.NewSessionRepoGorm(db)
	ticketRepo := repository.NewTicketRepoGorm(db)
	reservationRepo := repository.NewReservationRepoGorm(db)

	events := mq.NewPublisher(mqConn, logger)

	catalogService := domain.NewCatalogService(db, themeRepo, showRepo, domeRepo, redisCache, logger)
	sessionService := domain.NewSessionService(sessionRepo, ticketRepo, showRepo, domeRepo)
	bookingService := domain.NewBookingService(db, sessionRepo, ticketRepo, reservationRepo, events, logger)
	reservationService := domain.NewReservationService(reservationRepo, ticketRepo, events, logger)

	return &App{
		Config:             config,
		DB:                 db,
		Cache:              redisCache,
		Logger:             logger,
		MQConn:             mqConn,
		UserRepo:           userRepo,
		ThemeRepo:          themeRepo,
		ShowRepo:           showRepo,
		DomeRepo:           domeRepo,
		SessionRepo:        sessionRepo,
		TicketRepo:         ticketRepo,
		ReservationRepo:    reservationRepo,
		CatalogService:     catalogService,
		SessionService:     sessionService,
		BookingService:     bookingService,
		ReservationService: reservationService,
	}
}

func (app *App) Init() error {
	if err := app.DB.AutoMigrate(
		&model.User{},
		&model.ShowTheme{},
		&model.AstronomyShow{},
		&model.PlanetariumDome{},
		&model.ShowSession{},
		&model.Reservation{},
		&model.Ticket{},
	); err != nil {
		return err
	}

	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
