package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) Seed(ctx context.Context, records []domain.InventoryRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *mockInventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}

func (m *mockInventoryRepository) FindByCategory(ctx context.Context, category string) (domain.InventoryRecord, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.InventoryRecord), args.Error(1)
}

func (m *mockInventoryRepository) Commit(ctx context.Context, lines []domain.CartLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByReference(ctx context.Context, reference string) (domain.Order, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

// inlineTransactor runs fn directly and counts the transactions it was asked for.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
