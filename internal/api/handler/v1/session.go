package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/api/handler/v1/response"
	"github.com/vietanh2810/ticket-desk/internal/config"
	"github.com/vietanh2810/ticket-desk/internal/pkg/jwthelper"
)

type SessionCarts interface {
	Discard(sessionID string)
}

type SessionCheckouts interface {
	Forget(sessionID string)
}

type SessionHandler struct {
	conf      *config.APIConfig
	carts     SessionCarts
	checkouts SessionCheckouts
}

func NewSessionHandler(conf *config.APIConfig, carts SessionCarts, checkouts SessionCheckouts) *SessionHandler {
	return &SessionHandler{
		conf:      conf,
		carts:     carts,
		checkouts: checkouts,
	}
}

// HandleCreateSession godoc
// @Summary      Open a desk session
// @Description  Returns a session token. Send it as a Bearer token to use the shopping cart and the checkout.
// @Tags         sessions
// @Produce      json
// @Success      201      {object}   response.SessionResponse
// @Failure      500      {object}   response.Err
// @Router       /sessions [post]
func (h *SessionHandler) HandleCreateSession(ctx *gin.Context) {
	id := uuid.NewString()
	now := time.Now()

	token, err := jwthelper.GenerateToken([]byte(h.conf.SessionSigningKey), id, ctx.Request.UserAgent(), now, h.conf.SessionTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSession -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	zap.L().Debug("desk session has been opened", zap.String("session_id", id))

	ctx.JSON(http.StatusCreated, response.SessionResponse{
		SessionID: id,
		Token:     token,
		ExpiresAt: now.Add(h.conf.SessionTTL),
	})
}

// HandleCloseSession godoc
// @Summary      Close the desk session
// @Description  Drops the shopping cart and any order waiting for confirmation.
// @Tags         sessions
// @Success      204
// @Failure      401      {object}   response.Err
// @Router       /sessions [delete]
// @Security BearerAuth
func (h *SessionHandler) HandleCloseSession(ctx *gin.Context) {
	id := sessionID(ctx)

	h.carts.Discard(id)
	h.checkouts.Forget(id)

	ctx.Status(http.StatusNoContent)
}
