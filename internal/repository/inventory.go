package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/repository/dao"
)

var (
	ErrCategoryExists    = dao.ErrCategoryExists
	ErrCategoryNotFound  = dao.ErrCategoryNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type InventoryDAO interface {
	InsertMissing(ctx context.Context, categories []dao.TicketCategory) (int, error)
	FindAll(ctx context.Context) ([]dao.TicketCategory, error)
	FindByName(ctx context.Context, name string) (dao.TicketCategory, error)
	IncrementSold(ctx context.Context, increments []dao.SoldIncrement) error
}

type InventoryRepository struct {
	dao InventoryDAO
}

func NewInventoryRepository(dao InventoryDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

func (r *InventoryRepository) Seed(ctx context.Context, records []domain.InventoryRecord) (int, error) {
	categories := make([]dao.TicketCategory, len(records))
	for i, rec := range records {
		categories[i] = r.domainToDao(rec)
	}

	created, err := r.dao.InsertMissing(ctx, categories)
	if err != nil {
		return 0, fmt.Errorf("r.dao.InsertMissing -> %w", err)
	}

	return created, nil
}

func (r *InventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryRecord, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	records := make([]domain.InventoryRecord, len(found))
	for i, c := range found {
		records[i] = r.daoToDomain(c)
	}

	return records, nil
}

func (r *InventoryRepository) FindByCategory(ctx context.Context, category string) (domain.InventoryRecord, error) {
	found, err := r.dao.FindByName(ctx, category)
	if err != nil {
		return domain.InventoryRecord{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InventoryRepository) Commit(ctx context.Context, lines []domain.CartLine) error {
	if err := r.dao.IncrementSold(ctx, toIncrements(lines)); err != nil {
		return fmt.Errorf("r.dao.IncrementSold -> %w", err)
	}

	return nil
}

func toIncrements(lines []domain.CartLine) []dao.SoldIncrement {
	increments := make([]dao.SoldIncrement, len(lines))
	for i, l := range lines {
		increments[i] = dao.SoldIncrement{
			Category: l.Category,
			Quantity: l.Quantity,
		}
	}
	return increments
}

func (r *InventoryRepository) domainToDao(rec domain.InventoryRecord) dao.TicketCategory {
	return dao.TicketCategory{
		ID:         rec.ID,
		Name:       rec.Category,
		UnitPrice:  rec.UnitPrice,
		TotalCount: rec.TotalCount,
		SoldCount:  rec.SoldCount,
		Position:   rec.Position,
	}
}

func (r *InventoryRepository) daoToDomain(c dao.TicketCategory) domain.InventoryRecord {
	return domain.InventoryRecord{
		ID:         c.ID,
		Category:   c.Name,
		UnitPrice:  c.UnitPrice,
		TotalCount: c.TotalCount,
		SoldCount:  c.SoldCount,
		Position:   c.Position,
		UpdatedAt:  c.UpdatedAt,
	}
}
