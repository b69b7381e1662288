// Package shell drives the ticket-sales core the way a desk screen does:
// it keeps the quantity inputs, navigates between screens and reports every
// non-fatal failure as an Alert.
package shell

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/service"
)

const defaultQuantity = "1"

type Inventory interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
}

type Carts interface {
	Add(ctx context.Context, sessionID, category, quantity string) (domain.CartLine, error)
	Remove(sessionID string, index int) error
	Clear(sessionID string) error
	View(sessionID string) service.CartView
}

type Orders interface {
	Begin(ctx context.Context, sessionID string) (domain.Checkout, error)
	Cancel(sessionID string) error
	Confirm(ctx context.Context, sessionID string, buyer domain.Buyer) (domain.Receipt, error)
}

type Venue interface {
	Map() domain.VenueMap
}

// Session is one buyer at the desk.
type Session struct {
	id        string
	inventory Inventory
	carts     Carts
	orders    Orders
	venue     Venue

	router     *Router
	categories []domain.TicketCategory
	inputs     map[string]string
	checkout   *domain.Checkout
	receipt    *domain.Receipt
}

func NewSession(id string, inventory Inventory, carts Carts, orders Orders, venue Venue) *Session {
	return &Session{
		id:        id,
		inventory: inventory,
		carts:     carts,
		orders:    orders,
		venue:     venue,
		router:    NewRouter(),
		inputs:    make(map[string]string),
	}
}

// Start loads the catalog and resets the start screen. An error here means the
// store is unreachable and the desk cannot run.
func (s *Session) Start(ctx context.Context) error {
	records, err := s.inventory.List(ctx)
	if err != nil {
		return fmt.Errorf("s.inventory.List -> %w", err)
	}

	s.categories = make([]domain.TicketCategory, len(records))
	for i, r := range records {
		s.categories[i] = r.TicketCategory()
	}

	s.Reset()

	zap.L().Debug("start view has been initialized", zap.Int("categories", len(s.categories)))

	return nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Screen() Screen {
	return s.router.Current()
}

func (s *Session) Back() Screen {
	return s.router.Back()
}

func (s *Session) Categories() []domain.TicketCategory {
	categories := make([]domain.TicketCategory, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// Input returns the quantity typed for category.
func (s *Session) Input(category string) string {
	return s.inputs[category]
}

func (s *Session) SetInput(category, value string) {
	s.inputs[category] = value
}

func (s *Session) Cart() service.CartView {
	return s.carts.View(s.id)
}

// AddToCart adds the typed quantity of category. The input is validated before any line is created.
func (s *Session) AddToCart(ctx context.Context, category, input string) *Alert {
	s.SetInput(category, input)

	if _, err := s.carts.Add(ctx, s.id, category, input); err != nil {
		return AlertFor(err)
	}

	return nil
}

// DeleteLine removes the selected cart line. index < 0 means nothing is selected.
func (s *Session) DeleteLine(index int) *Alert {
	if err := s.carts.Remove(s.id, index); err != nil {
		return AlertFor(err)
	}

	zap.L().Debug("a ticket has been deleted from the shopping cart", zap.Int("index", index))

	return nil
}

// Next validates the cart and opens the order details screen.
func (s *Session) Next(ctx context.Context) (domain.Checkout, *Alert) {
	checkout, err := s.orders.Begin(ctx, s.id)
	if err != nil {
		return domain.Checkout{}, AlertFor(err)
	}

	s.checkout = &checkout
	s.router.Navigate(ScreenOrderDetails)

	return checkout, nil
}

func (s *Session) Checkout() *domain.Checkout {
	return s.checkout
}

// Confirm commits the order for buyer and opens the acknowledgement screen.
// When the order can no longer be served the buyer goes back to the start
// screen with the cart intact. Other failures keep the order details screen
// so the buyer can retry.
func (s *Session) Confirm(ctx context.Context, buyer domain.Buyer) (domain.Receipt, *Alert) {
	receipt, err := s.orders.Confirm(ctx, s.id, buyer)
	if err != nil {
		if backToReview(err) {
			s.checkout = nil
			s.router.Home()
		}
		return domain.Receipt{}, AlertFor(err)
	}

	s.checkout = nil
	s.receipt = &receipt
	s.router.Navigate(ScreenAcknowledgement)

	return receipt, nil
}

func backToReview(err error) bool {
	return errors.Is(err, service.ErrInsufficientStock) ||
		errors.Is(err, service.ErrCategoryNotFound) ||
		errors.Is(err, service.ErrNoCheckout) ||
		errors.Is(err, service.ErrCheckoutClosed)
}

func (s *Session) Receipt() *domain.Receipt {
	return s.receipt
}

// Cancel leaves the order details screen. The cart is kept.
func (s *Session) Cancel() *Alert {
	s.checkout = nil
	s.router.Home()

	if err := s.orders.Cancel(s.id); err != nil {
		return AlertFor(err)
	}

	return nil
}

// Tickets opens the availability screen.
func (s *Session) Tickets(ctx context.Context) ([]domain.Availability, *Alert) {
	records, err := s.inventory.List(ctx)
	if err != nil {
		return nil, AlertFor(err)
	}

	s.router.Navigate(ScreenTicketAvailability)

	return domain.Availabilities(records), nil
}

// Map opens the grandstand map.
func (s *Session) Map() domain.VenueMap {
	s.router.Navigate(ScreenVenueMap)
	return s.venue.Map()
}

// Reset brings back the start screen: every quantity input is "1" and the cart is empty.
// An order waiting for confirmation is cancelled first.
func (s *Session) Reset() {
	for _, c := range s.categories {
		s.inputs[c.Name] = defaultQuantity
	}

	if s.checkout != nil {
		if err := s.orders.Cancel(s.id); err != nil {
			zap.L().Debug("no order to cancel on reset", zap.Error(err))
		}
	}
	if err := s.carts.Clear(s.id); err != nil {
		zap.L().Warn("shopping cart could not be emptied", zap.Error(err))
	}
	s.checkout = nil
	s.receipt = nil
	s.router.Home()

	zap.L().Debug("shopping cart has been initialized")
}
