package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/ticket-desk/internal/api/handler/v1/response"
	"github.com/vietanh2810/ticket-desk/internal/api/middleware"
	"github.com/vietanh2810/ticket-desk/internal/service"
)

// renderServiceErr maps a core error to its HTTP error body. op names the failed call for the server log.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrBadAmount):
		response.RenderErr(ctx, response.ErrBadAmount(service.ErrBadAmount))
	case errors.Is(err, service.ErrInvalidBuyer):
		response.RenderErr(ctx, response.ErrInvalidBuyer(err))
	case errors.Is(err, service.ErrCategoryNotFound):
		response.RenderErr(ctx, response.ErrNotFound("ticket category", "name", ctx.Param("category")))
	case errors.Is(err, service.ErrOrderNotFound):
		response.RenderErr(ctx, response.ErrNotFound("order", "reference", ctx.Param("reference")))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrConflict(response.CodeInsufficientStock, stockErr(err)))
	case errors.Is(err, service.ErrEmptyCart):
		response.RenderErr(ctx, response.ErrConflict(response.CodeEmptyCart, service.ErrEmptyCart))
	case errors.Is(err, service.ErrNoSelection):
		response.RenderErr(ctx, response.ErrConflict(response.CodeNoSelection, service.ErrNoSelection))
	case errors.Is(err, service.ErrNoCheckout):
		response.RenderErr(ctx, response.ErrConflict(response.CodeNoCheckout, service.ErrNoCheckout))
	case errors.Is(err, service.ErrCartLocked):
		response.RenderErr(ctx, response.ErrConflict(response.CodeCartLocked, service.ErrCartLocked))
	case errors.Is(err, service.ErrCheckoutClosed):
		response.RenderErr(ctx, response.ErrConflict(response.CodeCheckoutClosed, service.ErrCheckoutClosed))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

// stockErr keeps the category details when the finalizer reported them.
func stockErr(err error) error {
	var e *service.InsufficientStockError
	if errors.As(err, &e) {
		return e
	}
	return service.ErrInsufficientStock
}

func sessionID(ctx *gin.Context) string {
	return ctx.GetString(middleware.SessionIDKey)
}
