package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

type InventoryService interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	Get(ctx context.Context, category string) (domain.InventoryRecord, error)
}

type TicketHandler struct {
	svc InventoryService
}

func NewTicketHandler(svc InventoryService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleGetTickets godoc
// @Summary      List ticket availability
// @Description  Every ticket category in catalog order with its price and remaining tickets.
// @Tags         tickets
// @Produce      json
// @Success      200      {array}    domain.Availability
// @Failure      500      {object}   response.Err
// @Router       /tickets [get]
func (h *TicketHandler) HandleGetTickets(ctx *gin.Context) {
	records, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTickets -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, domain.Availabilities(records))
}

// HandleGetTicket godoc
// @Summary      Get one ticket category
// @Tags         tickets
// @Produce      json
// @Param        category  path      string  true  "Category name"
// @Success      200      {object}   domain.Availability
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /tickets/{category} [get]
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	record, err := h.svc.Get(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTicket -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, record.Availability())
}
