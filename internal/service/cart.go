package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

var (
	ErrBadAmount   = domain.ErrBadAmount
	ErrNoSelection = domain.ErrNoSelection
	ErrCartLocked  = errors.New("the cart is waiting for order confirmation")
)

type CategoryFinder interface {
	Get(ctx context.Context, category string) (domain.InventoryRecord, error)
}

// CartView is a snapshot of one session's cart.
type CartView struct {
	Lines  []domain.CartLine `json:"lines"`
	Total  int               `json:"total"`
	Locked bool              `json:"locked"`
}

// CartService keeps one in-memory cart per session. Carts are never persisted.
// A locked cart belongs to an open checkout and rejects every change.
type CartService struct {
	categories CategoryFinder

	mu     sync.Mutex
	carts  map[string]*domain.Cart
	locked map[string]bool
}

func NewCartService(categories CategoryFinder) *CartService {
	return &CartService{
		categories: categories,
		carts:      make(map[string]*domain.Cart),
		locked:     make(map[string]bool),
	}
}

// cart must be called with s.mu held.
func (s *CartService) cart(sessionID string) *domain.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = domain.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

// Add validates the raw quantity input and appends a line for category.
func (s *CartService) Add(ctx context.Context, sessionID, category, quantity string) (domain.CartLine, error) {
	amount, err := domain.ParseQuantity(quantity)
	if err != nil {
		zap.L().Warn("bad amount of tickets", zap.String("category", category), zap.String("input", quantity))
		return domain.CartLine{}, err
	}

	record, err := s.categories.Get(ctx, category)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("s.categories.Get -> %w", err)
	}

	line := domain.CartLine{
		Category:  record.Category,
		UnitPrice: record.UnitPrice,
		Quantity:  amount,
	}

	s.mu.Lock()
	if s.locked[sessionID] {
		s.mu.Unlock()
		zap.L().Warn("cart change refused during checkout", zap.String("session_id", sessionID))
		return domain.CartLine{}, ErrCartLocked
	}
	s.cart(sessionID).Add(line)
	s.mu.Unlock()

	zap.L().Debug("ticket(s) added to the shopping cart",
		zap.String("session_id", sessionID),
		zap.String("category", line.Category),
		zap.Int("quantity", line.Quantity),
	)

	return line, nil
}

func (s *CartService) Remove(sessionID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked[sessionID] {
		return ErrCartLocked
	}

	if err := s.cart(sessionID).Remove(index); err != nil {
		zap.L().Warn("a ticket has not been selected for removal", zap.String("session_id", sessionID), zap.Int("index", index))
		return err
	}

	return nil
}

func (s *CartService) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked[sessionID] {
		return ErrCartLocked
	}
	s.cart(sessionID).Clear()

	return nil
}

// Lock freezes the cart and returns its lines. Locking a locked cart returns the same lines.
func (s *CartService) Lock(sessionID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locked[sessionID] = true

	return s.cart(sessionID).Lines()
}

func (s *CartService) Unlock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locked, sessionID)
}

// Settle empties a locked cart once its order is stored and unlocks it.
func (s *CartService) Settle(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).Clear()
	delete(s.locked, sessionID)
}

func (s *CartService) IsLocked(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked[sessionID]
}

func (s *CartService) IsEmpty(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(sessionID).IsEmpty()
}

func (s *CartService) Lines(sessionID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(sessionID).Lines()
}

func (s *CartService) View(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)

	return CartView{
		Lines:  c.Lines(),
		Total:  c.Total(),
		Locked: s.locked[sessionID],
	}
}

// Discard forgets the session's cart.
func (s *CartService) Discard(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	delete(s.locked, sessionID)
}
