// Package core assembles the ticket-sales core shared by every shell: the
// inventory store, the per-session carts and the order finalizer.
package core

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vietanh2810/ticket-desk/internal/config"
	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/repository"
	"github.com/vietanh2810/ticket-desk/internal/repository/dao"
	"github.com/vietanh2810/ticket-desk/internal/service"
)

type Core struct {
	Inventory *service.InventoryService
	Carts     *service.CartService
	Orders    *service.OrderService
	Venue     *service.VenueService
}

func New(db *gorm.DB, venue domain.VenueMap) *Core {
	inventory := service.NewInventoryService(repository.NewInventoryRepository(dao.NewInventoryDAO(db)))
	carts := service.NewCartService(inventory)
	orders := service.NewOrderService(repository.NewOrderRepository(dao.NewOrderDAO(db)), inventory, carts, dao.NewTransactor(db))

	return &Core{
		Inventory: inventory,
		Carts:     carts,
		Orders:    orders,
		Venue:     service.NewVenueService(venue),
	}
}

// Open builds the core from configuration and seeds the catalog. A failure here is fatal for the caller.
func Open(ctx context.Context, db *gorm.DB, conf *config.AppConfig) (*Core, error) {
	c := New(db, VenueFromConfig(conf.Venue))

	if err := c.Inventory.Seed(ctx, CatalogFromConfig(conf.Catalog)); err != nil {
		return nil, fmt.Errorf("c.Inventory.Seed -> %w", err)
	}

	return c, nil
}

func CatalogFromConfig(entries []config.CatalogEntry) []domain.InventoryRecord {
	records := make([]domain.InventoryRecord, len(entries))
	for i, e := range entries {
		records[i] = domain.InventoryRecord{
			Category:   e.Name,
			UnitPrice:  e.UnitPrice,
			TotalCount: e.TotalCount,
			Position:   i,
		}
	}
	return records
}

func VenueFromConfig(conf *config.VenueConfig) domain.VenueMap {
	if conf == nil {
		return domain.VenueMap{}
	}

	venue := domain.VenueMap{
		Title:       conf.Title,
		Grandstands: make([]domain.Grandstand, len(conf.Grandstands)),
	}
	for i, g := range conf.Grandstands {
		venue.Grandstands[i] = domain.Grandstand{
			Name:        g.Name,
			Category:    g.Category,
			Description: g.Description,
		}
	}

	return venue
}
