package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/ticket-desk/internal/api/handler/v1/request"
	"github.com/vietanh2810/ticket-desk/internal/api/handler/v1/response"
	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/service"
)

type CartService interface {
	Add(ctx context.Context, sessionID, category, quantity string) (domain.CartLine, error)
	Remove(sessionID string, index int) error
	Clear(sessionID string) error
	View(sessionID string) service.CartView
}

type CartHandler struct {
	svc CartService
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{
		svc: svc,
	}
}

// HandleGetCart godoc
// @Summary      Get the shopping cart
// @Tags         cart
// @Produce      json
// @Success      200      {object}   service.CartView
// @Failure      401      {object}   response.Err
// @Router       /cart [get]
// @Security BearerAuth
func (h *CartHandler) HandleGetCart(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.View(sessionID(ctx)))
}

// HandleAddLine godoc
// @Summary      Add tickets to the shopping cart
// @Description  The quantity must be an integer greater than 0. Adding a category twice adds a second line.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request   body      request.AddLineRequest true "request body"
// @Success      201      {object}   service.CartView
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /cart/lines [post]
// @Security BearerAuth
func (h *CartHandler) HandleAddLine(ctx *gin.Context) {
	var req request.AddLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id := sessionID(ctx)
	if _, err := h.svc.Add(ctx.Request.Context(), id, req.Category, req.Quantity); err != nil {
		ctx.AddParam("category", req.Category)
		renderServiceErr(ctx, "v1.HandleAddLine -> h.svc.Add", err)
		return
	}

	ctx.JSON(http.StatusCreated, h.svc.View(id))
}

// HandleDeleteLine godoc
// @Summary      Remove a line from the shopping cart
// @Tags         cart
// @Produce      json
// @Param        index  path      int  true  "Line index, starting at 0"
// @Success      200      {object}   service.CartView
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /cart/lines/{index} [delete]
// @Security BearerAuth
func (h *CartHandler) HandleDeleteLine(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		index = -1
	}

	id := sessionID(ctx)
	if err = h.svc.Remove(id, index); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteLine -> h.svc.Remove", err)
		return
	}

	ctx.JSON(http.StatusOK, h.svc.View(id))
}

// HandleClearCart godoc
// @Summary      Empty the shopping cart
// @Tags         cart
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /cart [delete]
// @Security BearerAuth
func (h *CartHandler) HandleClearCart(ctx *gin.Context) {
	if err := h.svc.Clear(sessionID(ctx)); err != nil {
		renderServiceErr(ctx, "v1.HandleClearCart -> h.svc.Clear", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
