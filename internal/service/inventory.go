package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/repository"
)

var (
	ErrCategoryNotFound  = repository.ErrCategoryNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock
)

type InventoryRepository interface {
	Seed(ctx context.Context, records []domain.InventoryRecord) (int, error)
	FindAll(ctx context.Context) ([]domain.InventoryRecord, error)
	FindByCategory(ctx context.Context, category string) (domain.InventoryRecord, error)
	Commit(ctx context.Context, lines []domain.CartLine) error
}

// InventoryService is the inventory store: availability queries and stock commits.
type InventoryService struct {
	repo InventoryRepository

	mu        sync.RWMutex
	listeners []func([]domain.InventoryRecord)
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

// Seed creates the configured categories that are not stored yet.
func (s *InventoryService) Seed(ctx context.Context, catalog []domain.InventoryRecord) error {
	created, err := s.repo.Seed(ctx, catalog)
	if err != nil {
		return fmt.Errorf("s.repo.Seed -> %w", err)
	}

	zap.L().Info("ticket catalog is ready", zap.Int("categories", len(catalog)), zap.Int("created", created))

	return nil
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return records, nil
}

func (s *InventoryService) Get(ctx context.Context, category string) (domain.InventoryRecord, error) {
	record, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return domain.InventoryRecord{}, fmt.Errorf("s.repo.FindByCategory -> %w", err)
	}

	return record, nil
}

func (s *InventoryService) Available(ctx context.Context, category string) (int, error) {
	record, err := s.Get(ctx, category)
	if err != nil {
		return 0, err
	}

	return record.Available(), nil
}

// CheckAvailable reports whether amount tickets of category can still be sold. It never mutates the store.
func (s *InventoryService) CheckAvailable(ctx context.Context, category string, amount int) (bool, error) {
	available, err := s.Available(ctx, category)
	if err != nil {
		return false, err
	}

	return amount <= available, nil
}

// Commit sells every line or none. A line that would exceed the remaining
// availability fails the whole commit with ErrInsufficientStock. Listeners are
// not notified; callers run Changed once the surrounding transaction is stored.
func (s *InventoryService) Commit(ctx context.Context, lines []domain.CartLine) error {
	if err := s.repo.Commit(ctx, lines); err != nil {
		return fmt.Errorf("s.repo.Commit -> %w", err)
	}

	return nil
}

// OnChange registers fn to receive the full availability list after every commit.
func (s *InventoryService) OnChange(fn func([]domain.InventoryRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// Changed notifies listeners with the current availability.
func (s *InventoryService) Changed(ctx context.Context) {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()

	if len(listeners) == 0 {
		return
	}

	records, err := s.List(ctx)
	if err != nil {
		zap.L().Warn("could not load availability for listeners", zap.Error(err))
		return
	}

	for _, fn := range listeners {
		fn(records)
	}
}
