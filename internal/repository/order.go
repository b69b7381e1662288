package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/repository/dao"
)

var (
	ErrOrderNotFound  = dao.ErrOrderNotFound
	ErrOrderReference = dao.ErrOrderReference
)

type OrderDAO interface {
	Insert(ctx context.Context, order dao.Order) (dao.Order, error)
	FindByReference(ctx context.Context, reference string) (dao.Order, error)
	FindAll(ctx context.Context) ([]dao.Order, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(order))
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrderRepository) FindByReference(ctx context.Context, reference string) (domain.Order, error) {
	found, err := r.dao.FindByReference(ctx, reference)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByReference -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	orders := make([]domain.Order, len(found))
	for i, o := range found {
		orders[i] = r.daoToDomain(o)
	}

	return orders, nil
}

func (r *OrderRepository) domainToDao(o domain.Order) dao.Order {
	lines := make([]dao.OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = dao.OrderLine{
			Position:  i,
			Category:  l.Category,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}

	return dao.Order{
		ID:        o.ID,
		Reference: o.Reference,
		Buyer: dao.Buyer{
			ID:      o.Buyer.ID,
			Name:    o.Buyer.Name,
			Email:   o.Buyer.Email,
			Phone:   o.Buyer.Phone,
			Address: o.Buyer.Address,
		},
		Lines:     lines,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

func (r *OrderRepository) daoToDomain(o dao.Order) domain.Order {
	lines := make([]domain.CartLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = domain.CartLine{
			Category:  l.Category,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}

	return domain.Order{
		ID:        o.ID,
		Reference: o.Reference,
		Buyer: domain.Buyer{
			ID:      o.Buyer.ID,
			Name:    o.Buyer.Name,
			Email:   o.Buyer.Email,
			Phone:   o.Buyer.Phone,
			Address: o.Buyer.Address,
		},
		Lines:     lines,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}
