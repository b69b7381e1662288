package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/repository"
)

var (
	ErrEmptyCart      = errors.New("shopping cart is empty")
	ErrNoCheckout     = errors.New("no order is waiting for confirmation")
	ErrCheckoutClosed = errors.New("the order attempt is already closed")
	ErrInvalidBuyer   = errors.New("invalid buyer details")
	ErrOrderNotFound  = repository.ErrOrderNotFound
)

// InsufficientStockError names the first cart line that could not be served.
type InsufficientStockError struct {
	Category  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("there is no enough %q tickets: requested %d, available %d", e.Category, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type OrderRepository interface {
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByReference(ctx context.Context, reference string) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type Inventory interface {
	Available(ctx context.Context, category string) (int, error)
	CheckAvailable(ctx context.Context, category string, amount int) (bool, error)
	Commit(ctx context.Context, lines []domain.CartLine) error
	Changed(ctx context.Context)
}

type Carts interface {
	Lock(sessionID string) []domain.CartLine
	Unlock(sessionID string)
	Settle(sessionID string)
}

// Transactor runs fn in one store transaction; every store call made with the ctx it receives takes part in it.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderService finalizes carts into orders. Each session has at most one
// checkout waiting for buyer details.
type OrderService struct {
	repo      OrderRepository
	inventory Inventory
	carts     Carts
	tx        Transactor

	mu        sync.Mutex
	checkouts map[string]*domain.Checkout

	now          func() time.Time
	newReference func() string
}

func NewOrderService(repo OrderRepository, inventory Inventory, carts Carts, tx Transactor) *OrderService {
	return &OrderService{
		repo:         repo,
		inventory:    inventory,
		carts:        carts,
		tx:           tx,
		checkouts:    make(map[string]*domain.Checkout),
		now:          time.Now,
		newReference: uuid.NewString,
	}
}

// Begin reviews the session's cart and validates every line against the
// inventory in cart order. The first unavailable line aborts the attempt.
// On success the checkout waits for buyer details and the cart stays locked
// until the checkout is closed.
func (s *OrderService) Begin(ctx context.Context, sessionID string) (domain.Checkout, error) {
	lines := s.carts.Lock(sessionID)
	if len(lines) == 0 {
		s.abort(sessionID)
		zap.L().Warn("next has been requested while the cart is empty", zap.String("session_id", sessionID))
		return domain.Checkout{}, ErrEmptyCart
	}

	for _, line := range lines {
		ok, err := s.inventory.CheckAvailable(ctx, line.Category, line.Quantity)
		if err != nil {
			s.abort(sessionID)
			return domain.Checkout{}, fmt.Errorf("s.inventory.CheckAvailable -> %w", err)
		}
		if ok {
			continue
		}

		s.abort(sessionID)

		available, err := s.inventory.Available(ctx, line.Category)
		if err != nil {
			return domain.Checkout{}, fmt.Errorf("s.inventory.Available -> %w", err)
		}

		zap.L().Warn("there is no enough ticket for the order",
			zap.String("session_id", sessionID),
			zap.String("category", line.Category),
			zap.Int("requested", line.Quantity),
			zap.Int("available", available),
		)

		return domain.Checkout{}, &InsufficientStockError{
			Category:  line.Category,
			Requested: line.Quantity,
			Available: available,
		}
	}

	checkout := &domain.Checkout{
		SessionID: sessionID,
		State:     domain.CheckoutCollectIdentity,
		Lines:     lines,
		Total:     domain.LinesTotal(lines),
		StartedAt: s.now(),
	}

	s.mu.Lock()
	s.checkouts[sessionID] = checkout
	s.mu.Unlock()

	return *checkout, nil
}

// Current returns the latest checkout of the session, open or closed.
func (s *OrderService) Current(sessionID string) (domain.Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.checkouts[sessionID]
	if !ok {
		return domain.Checkout{}, ErrNoCheckout
	}

	return *c, nil
}

// Cancel closes the waiting checkout. The cart is left intact and unlocked.
func (s *OrderService) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.checkouts[sessionID]
	if !ok {
		return ErrNoCheckout
	}
	if !c.IsOpen() {
		return ErrCheckoutClosed
	}

	c.Cancel()
	s.carts.Unlock(sessionID)

	return nil
}

// Confirm commits the lines validated by Begin for buyer. The inventory commit
// and the order are stored in one transaction; on success the cart is emptied.
func (s *OrderService) Confirm(ctx context.Context, sessionID string, buyer domain.Buyer) (domain.Receipt, error) {
	if err := buyer.Validate(); err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %v", ErrInvalidBuyer, err)
	}

	checkout, err := s.claim(sessionID)
	if err != nil {
		return domain.Receipt{}, err
	}

	var order domain.Order
	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.inventory.Commit(ctx, checkout.Lines); err != nil {
			return fmt.Errorf("s.inventory.Commit -> %w", err)
		}

		var err error
		order, err = s.repo.Save(ctx, domain.Order{
			Reference: s.newReference(),
			Buyer:     buyer,
			Lines:     checkout.Lines,
			Total:     checkout.Total,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("s.repo.Save -> %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrCategoryNotFound) {
			// Back to review, the cart is untouched.
			zap.L().Warn("order commit rejected by the inventory", zap.String("session_id", sessionID), zap.Error(err))
			s.drop(checkout)
			return domain.Receipt{}, fmt.Errorf("s.tx.InTransaction -> %w", err)
		}

		s.release(checkout)
		return domain.Receipt{}, fmt.Errorf("s.tx.InTransaction -> %w", err)
	}

	checkout.Acknowledge()
	s.release(checkout)
	s.carts.Settle(sessionID)
	s.inventory.Changed(ctx)

	zap.L().Info("order has been committed",
		zap.String("reference", order.Reference),
		zap.Int("lines", len(order.Lines)),
		zap.Int("total", order.Total),
	)

	return order.Receipt(), nil
}

// claim takes the open checkout out of the map so a concurrent confirm of the same session fails.
func (s *OrderService) claim(sessionID string) (*domain.Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.checkouts[sessionID]
	if !ok {
		return nil, ErrNoCheckout
	}
	if !c.IsOpen() {
		return nil, ErrCheckoutClosed
	}

	delete(s.checkouts, sessionID)

	return c, nil
}

// release puts a claimed checkout back unless a new attempt has started meanwhile.
func (s *OrderService) release(c *domain.Checkout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.checkouts[c.SessionID]; !taken {
		s.checkouts[c.SessionID] = c
	}
}

// drop unlocks the cart of a claimed checkout unless a new attempt has started meanwhile.
func (s *OrderService) drop(c *domain.Checkout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.checkouts[c.SessionID]; !taken {
		s.carts.Unlock(c.SessionID)
	}
}

// abort ends a failed Begin: the session has no checkout and its cart is editable again.
func (s *OrderService) abort(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.checkouts, sessionID)
	s.carts.Unlock(sessionID)
}

// Forget drops every checkout of the session and unlocks its cart.
func (s *OrderService) Forget(sessionID string) {
	s.abort(sessionID)
}

func (s *OrderService) GetOrder(ctx context.Context, reference string) (domain.Order, error) {
	order, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByReference -> %w", err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return orders, nil
}
