package shell

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/service"
)

type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Alert is a dialog the shell shows to the user.
type Alert struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Header  string `json:"header"`
	Content string `json:"content"`
}

var (
	AlertEmptyCart = Alert{
		Level:   LevelWarning,
		Title:   "Warning",
		Header:  "Shopping cart is empty",
		Content: "Please add tickets to the shopping cart",
	}
	AlertNoSelection = Alert{
		Level:   LevelWarning,
		Title:   "Warning",
		Header:  "No Selection",
		Content: "Please select a ticket to remove",
	}
	AlertBadAmount = Alert{
		Level:   LevelWarning,
		Title:   "Warning",
		Header:  "Bad amount",
		Content: "Please give an integer which is greater than 0",
	}
	AlertNoConnection = Alert{
		Level:   LevelError,
		Title:   "Error",
		Header:  "No connection",
		Content: "Sorry, there is no connection with the database",
	}
)

func noEnoughTicket(err error) *Alert {
	a := &Alert{
		Level:   LevelError,
		Title:   "Error",
		Header:  "No enough ticket",
		Content: "Sorry, there is no enough tickets",
	}

	var stockErr *service.InsufficientStockError
	if errors.As(err, &stockErr) {
		a.Content = fmt.Sprintf("Sorry, there is no enough %s tickets: %d requested, %d available",
			stockErr.Category, stockErr.Requested, stockErr.Available)
	}

	return a
}

// AlertFor turns a core error into the dialog shown for it.
func AlertFor(err error) *Alert {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrBadAmount):
		a := AlertBadAmount
		return &a
	case errors.Is(err, domain.ErrNoSelection):
		a := AlertNoSelection
		return &a
	case errors.Is(err, service.ErrEmptyCart):
		a := AlertEmptyCart
		return &a
	case errors.Is(err, service.ErrInsufficientStock):
		return noEnoughTicket(err)
	case errors.Is(err, service.ErrCategoryNotFound):
		return &Alert{Level: LevelWarning, Title: "Warning", Header: "Unknown category", Content: "Please choose one of the listed ticket categories"}
	case errors.Is(err, service.ErrInvalidBuyer):
		return &Alert{Level: LevelWarning, Title: "Warning", Header: "Invalid details", Content: err.Error()}
	case errors.Is(err, service.ErrCartLocked):
		return &Alert{Level: LevelWarning, Title: "Warning", Header: "Order in progress", Content: "Please confirm or cancel the order before changing the shopping cart"}
	case errors.Is(err, service.ErrNoCheckout), errors.Is(err, service.ErrCheckoutClosed):
		return &Alert{Level: LevelWarning, Title: "Warning", Header: "No order in progress", Content: "Please review the shopping cart again"}
	}

	zap.L().Error("unexpected error in the ticket desk", zap.Error(err))

	return &Alert{Level: LevelError, Title: "Error", Header: "Something went wrong", Content: "Sorry, the request could not be completed"}
}
