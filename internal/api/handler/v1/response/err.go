package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CodeBadRequest int64 = 40000 + iota
	CodeBadAmount
	CodeInvalidBuyer
)

const (
	CodeUnauthorized int64 = 40100
	CodeNotFound     int64 = 40400
)

const (
	CodeConflict int64 = 40900 + iota
	CodeInsufficientStock
	CodeEmptyCart
	CodeNoSelection
	CodeNoCheckout
	CodeCheckoutClosed
	CodeCartLocked
)

const CodeInternal int64 = 50000

// Err is the error body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	AppCode    int64  `json:"code,omitempty"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

func (e *Err) Unwrap() error {
	return e.Err
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(status int, code int64, err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		AppCode:        code,
		ErrorText:      err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, CodeBadRequest, err)
}

func ErrBadAmount(err error) *Err {
	return newErr(http.StatusBadRequest, CodeBadAmount, err)
}

func ErrInvalidBuyer(err error) *Err {
	return newErr(http.StatusBadRequest, CodeInvalidBuyer, err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, err)
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s with %s %v is not found", resource, key, value))
}

func ErrConflict(code int64, err error) *Err {
	return newErr(http.StatusConflict, code, err)
}

func ErrInternalServerError(err error) *Err {
	e := newErr(http.StatusInternalServerError, CodeInternal, err)
	e.ErrorText = "the server encountered a problem and could not process your request"
	return e
}
