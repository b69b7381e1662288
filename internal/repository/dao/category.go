package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCategoryExists    = errors.New("ticket category already exists")
	ErrCategoryNotFound  = errors.New("ticket category not found")
	ErrInsufficientStock = errors.New("there is no enough tickets")
)

type TicketCategory struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"unique;not null"`
	UnitPrice  int    `gorm:"not null"`
	TotalCount int    `gorm:"not null"`
	SoldCount  int    `gorm:"not null;default:0"`
	Position   int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SoldIncrement is a request to sell Quantity more tickets of Category.
type SoldIncrement struct {
	Category string
	Quantity int
}

type InventoryDAO struct {
	db *gorm.DB
}

func NewInventoryDAO(db *gorm.DB) *InventoryDAO {
	return &InventoryDAO{
		db: db,
	}
}

func (d *InventoryDAO) Insert(ctx context.Context, category TicketCategory) (TicketCategory, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return TicketCategory{}, ErrCategoryExists
		}

		return TicketCategory{}, result.Error
	}

	return category, nil
}

// InsertMissing creates the categories that do not exist yet and leaves existing rows untouched.
func (d *InventoryDAO) InsertMissing(ctx context.Context, categories []TicketCategory) (int, error) {
	created := 0
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range categories {
			var count int64
			if err := tx.Model(&TicketCategory{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

func (d *InventoryDAO) FindAll(ctx context.Context) ([]TicketCategory, error) {
	var categories []TicketCategory

	result := conn(ctx, d.db).Order("position, id").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *InventoryDAO) FindByName(ctx context.Context, name string) (TicketCategory, error) {
	var category TicketCategory

	result := conn(ctx, d.db).First(&category, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketCategory{}, ErrCategoryNotFound
		}

		return TicketCategory{}, result.Error
	}

	return category, nil
}

// IncrementSold applies every increment or none of them. Inside a Transactor
// transaction the increments are rolled back with the rest of it.
func (d *InventoryDAO) IncrementSold(ctx context.Context, increments []SoldIncrement) error {
	if tx, ok := txFrom(ctx); ok {
		return incrementSold(tx.WithContext(ctx), increments)
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return incrementSold(tx, increments)
	})
}

// incrementSold raises sold_count only where the new value stays within total_count,
// so concurrent commits can never oversell a category.
func incrementSold(tx *gorm.DB, increments []SoldIncrement) error {
	for _, inc := range increments {
		result := tx.Model(&TicketCategory{}).
			Where("name = ? AND sold_count + ? <= total_count", inc.Category, inc.Quantity).
			Update("sold_count", gorm.Expr("sold_count + ?", inc.Quantity))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&TicketCategory{}).Where("name = ?", inc.Category).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrCategoryNotFound
			}
			return ErrInsufficientStock
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	// sqlite reports constraint failures as plain text.
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
