package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planetarium/internal/model"
)

type domeRequest struct {
	Name       string `json:"name" binding:"required"`
	Rows       int    `json:"rows" binding:"required"`
	SeatsInRow int    `json:"seats_in_row" binding:"required"`
}

func (h *Handler) ListDomes(c *gin.Context) {
	domes, err := h.app.CatalogService.ListDomes()
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(domes))
	for i := range domes {
		out = append(out, renderDome(&domes[i], ViewDetail))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetDome(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	dome, err := h.app.CatalogService.GetDomeByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderDome(dome, ViewDetail))
}

func (h *Handler) CreateDome(c *gin.Context) {
	var req domeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	dome := &model.PlanetariumDome{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}
	if err := h.app.CatalogService.CreateDome(dome); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderDome(dome, ViewDetail))
}

func (h *Handler) UpdateDome(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	var req domeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	dome := &model.PlanetariumDome{
		ID:         id,
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}
	if err := h.app.CatalogService.UpdateDome(dome); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderDome(dome, ViewDetail))
}

func (h *Handler) DeleteDome(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.app.CatalogService.DeleteDome(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
