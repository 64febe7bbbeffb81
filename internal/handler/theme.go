package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planetarium/internal/model"
)

type themeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) ListThemes(c *gin.Context) {
	themes, err := h.app.CatalogService.ListThemes(c.Query("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, themes)
}

func (h *Handler) GetTheme(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	theme, err := h.app.CatalogService.GetThemeByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *Handler) CreateTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	theme := &model.ShowTheme{Name: req.Name}
	if err := h.app.CatalogService.CreateTheme(theme); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, theme)
}

func (h *Handler) UpdateTheme(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	theme := &model.ShowTheme{ID: id, Name: req.Name}
	if err := h.app.CatalogService.UpdateTheme(theme); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *Handler) DeleteTheme(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.app.CatalogService.DeleteTheme(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// paramID parses the :id path segment, answering 400 itself on junk.
func (h *Handler) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
