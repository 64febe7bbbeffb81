package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planetarium/internal/service/domain"
)

// write view: show and dome as raw references
type sessionRequest struct {
	AstronomyShow   *uint     `json:"astronomy_show"`
	PlanetariumDome *uint     `json:"planetarium_dome"`
	ShowTime        time.Time `json:"show_time" binding:"required"`
}

func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.app.SessionService.ListSessions()
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(sessions))
	for i := range sessions {
		out = append(out, renderSession(&sessions[i], ViewList))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetSession(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	session, err := h.app.SessionService.GetSessionByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderSession(session, ViewDetail))
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	session, err := h.app.SessionService.CreateSession(req.AstronomyShow, req.PlanetariumDome, req.ShowTime)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderSession(&domain.SessionWithAvailability{Session: *session}, ViewWrite))
}

func (h *Handler) UpdateSession(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	session, err := h.app.SessionService.UpdateSession(id, req.AstronomyShow, req.PlanetariumDome, req.ShowTime)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderSession(&domain.SessionWithAvailability{Session: *session}, ViewWrite))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.app.SessionService.DeleteSession(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
