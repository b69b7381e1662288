package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/ticket-desk/internal/api/handler/v1/request"
	"github.com/vietanh2810/ticket-desk/internal/api/handler/v1/response"
	"github.com/vietanh2810/ticket-desk/internal/domain"
)

type OrderService interface {
	Begin(ctx context.Context, sessionID string) (domain.Checkout, error)
	Current(sessionID string) (domain.Checkout, error)
	Cancel(sessionID string) error
	Confirm(ctx context.Context, sessionID string, buyer domain.Buyer) (domain.Receipt, error)
	GetOrder(ctx context.Context, reference string) (domain.Order, error)
}

type CheckoutHandler struct {
	svc OrderService
}

func NewCheckoutHandler(svc OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		svc: svc,
	}
}

// HandleBeginCheckout godoc
// @Summary      Proceed to the order details
// @Description  Checks every cart line against the remaining tickets in cart order. The first line that cannot be served aborts the order.
// @Tags         checkout
// @Produce      json
// @Success      201      {object}   domain.Checkout
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /checkout [post]
// @Security BearerAuth
func (h *CheckoutHandler) HandleBeginCheckout(ctx *gin.Context) {
	checkout, err := h.svc.Begin(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleBeginCheckout -> h.svc.Begin", err)
		return
	}

	ctx.JSON(http.StatusCreated, checkout)
}

// HandleGetCheckout godoc
// @Summary      Get the latest order attempt
// @Tags         checkout
// @Produce      json
// @Success      200      {object}   domain.Checkout
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /checkout [get]
// @Security BearerAuth
func (h *CheckoutHandler) HandleGetCheckout(ctx *gin.Context) {
	checkout, err := h.svc.Current(sessionID(ctx))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCheckout -> h.svc.Current", err)
		return
	}

	ctx.JSON(http.StatusOK, checkout)
}

// HandleCancelCheckout godoc
// @Summary      Cancel the order details
// @Description  Goes back to the shopping cart, which is left unchanged.
// @Tags         checkout
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /checkout [delete]
// @Security BearerAuth
func (h *CheckoutHandler) HandleCancelCheckout(ctx *gin.Context) {
	if err := h.svc.Cancel(sessionID(ctx)); err != nil {
		renderServiceErr(ctx, "v1.HandleCancelCheckout -> h.svc.Cancel", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleConfirmCheckout godoc
// @Summary      Confirm the order
// @Description  Sells every cart line or none of them, stores the order and empties the cart.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request   body      request.ConfirmCheckoutRequest true "request body"
// @Success      201      {object}   domain.Receipt
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /checkout/confirm [post]
// @Security BearerAuth
func (h *CheckoutHandler) HandleConfirmCheckout(ctx *gin.Context) {
	var req request.ConfirmCheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrInvalidBuyer(err))
		return
	}

	receipt, err := h.svc.Confirm(ctx.Request.Context(), sessionID(ctx), req.ToBuyer())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleConfirmCheckout -> h.svc.Confirm", err)
		return
	}

	ctx.JSON(http.StatusCreated, receipt)
}

// HandleGetOrder godoc
// @Summary      Get an order by reference
// @Tags         orders
// @Produce      json
// @Param        reference  path      string  true  "Order reference"
// @Success      200      {object}   domain.Order
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /orders/{reference} [get]
func (h *CheckoutHandler) HandleGetOrder(ctx *gin.Context) {
	order, err := h.svc.GetOrder(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrder -> h.svc.GetOrder", err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}
