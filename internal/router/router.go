package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planetarium/internal/app"
	"planetarium/internal/auth"
	"planetarium/internal/handler"
)

func New(app *app.App) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(app.Logger), gin.Recovery())

	h := handler.NewHandler(app)

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	api := r.Group("/api/planetarium", auth.Identity(app.Config.JWTSecret))

	// reads need an identified caller, catalog writes need staff
	user := api.Group("", auth.RequireAuth())
	{
		user.GET("/theme", h.ListThemes)
		user.GET("/theme/:id", h.GetTheme)
		user.GET("/show", h.ListShows)
		user.GET("/show/:id", h.GetShow)
		user.GET("/dome", h.ListDomes)
		user.GET("/dome/:id", h.GetDome)
		user.GET("/session", h.ListSessions)
		user.GET("/session/:id", h.GetSession)

		user.GET("/reservation", h.ListReservations)
		user.GET("/reservation/:id", h.GetReservation)
		user.DELETE("/reservation/:id", h.DeleteReservation)

		user.POST("/ticket", h.CreateBooking)
		user.GET("/ticket", h.ListTickets)
		user.GET("/ticket/:id", h.GetTicket)
	}

	staff := api.Group("", auth.RequireStaff())
	{
		staff.POST("/theme", h.CreateTheme)
		staff.PUT("/theme/:id", h.UpdateTheme)
		staff.DELETE("/theme/:id", h.DeleteTheme)
		staff.POST("/show", h.CreateShow)
		staff.PUT("/show/:id", h.UpdateShow)
		staff.DELETE("/show/:id", h.DeleteShow)
		staff.POST("/dome", h.CreateDome)
		staff.PUT("/dome/:id", h.UpdateDome)
		staff.DELETE("/dome/:id", h.DeleteDome)
		staff.POST("/session", h.CreateSession)
		staff.PUT("/session/:id", h.UpdateSession)
		staff.DELETE("/session/:id", h.DeleteSession)
	}

	return r
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
