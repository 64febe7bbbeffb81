package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planetarium/internal/auth"
)

func (h *Handler) ListReservations(c *gin.Context) {
	page := parsePagination(c)
	reservations, total, err := h.app.ReservationService.ListReservations(
		auth.CallerID(c), auth.IsStaff(c), page.Offset(), page.PageSize)
	if err != nil {
		h.writeError(c, err)
		return
	}
	results := make([]gin.H, 0, len(reservations))
	for i := range reservations {
		results = append(results, renderReservation(&reservations[i], true))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	reservation, err := h.app.ReservationService.GetReservationByID(id, auth.CallerID(c), auth.IsStaff(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderReservation(reservation, true))
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.app.ReservationService.DeleteReservation(id, auth.CallerID(c), auth.IsStaff(c)); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
