package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planetarium/internal/model"
)

// themes travel as a set of theme names, not ids.
type showRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Themes      []string `json:"themes"`
}

func (h *Handler) ListShows(c *gin.Context) {
	shows, err := h.app.CatalogService.ListShows()
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(shows))
	for i := range shows {
		out = append(out, renderShow(&shows[i], ViewDetail))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetShow(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	show, err := h.app.CatalogService.GetShowByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderShow(show, ViewDetail))
}

func (h *Handler) CreateShow(c *gin.Context) {
	var req showRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	show := &model.AstronomyShow{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.app.CatalogService.CreateShow(show, req.Themes); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderShow(show, ViewDetail))
}

func (h *Handler) UpdateShow(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	var req showRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	show := &model.AstronomyShow{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.app.CatalogService.UpdateShow(show, req.Themes); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderShow(show, ViewDetail))
}

func (h *Handler) DeleteShow(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.app.CatalogService.DeleteShow(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
