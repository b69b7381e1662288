package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

type VenueService interface {
	Map() domain.VenueMap
}

type VenueHandler struct {
	svc VenueService
}

func NewVenueHandler(svc VenueService) *VenueHandler {
	return &VenueHandler{
		svc: svc,
	}
}

// HandleGetMap godoc
// @Summary      Grandstand map
// @Description  Which ticket category seats each grandstand of the circuit.
// @Tags         venue
// @Produce      json
// @Success      200      {object}   domain.VenueMap
// @Router       /venue/map [get]
func (h *VenueHandler) HandleGetMap(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Map())
}
