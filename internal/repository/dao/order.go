package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderReference = errors.New("order reference already used")
)

type Buyer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null;index"`
	Phone     string
	Address   string
	CreatedAt time.Time
}

type Order struct {
	ID        uint        `gorm:"primaryKey"`
	Reference string      `gorm:"unique;not null"`
	BuyerID   uint        `gorm:"not null;index"`
	Buyer     Buyer       `gorm:"foreignKey:BuyerID"`
	Lines     []OrderLine `gorm:"foreignKey:OrderID"`
	Total     int         `gorm:"not null"`
	CreatedAt time.Time
}

type OrderLine struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   uint   `gorm:"not null;index"`
	Position  int    `gorm:"not null"`
	Category  string `gorm:"not null"`
	UnitPrice int    `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// Insert stores the order with its buyer and lines. Called inside a Transactor
// transaction it is written together with the stock commit.
func (d *OrderDAO) Insert(ctx context.Context, order Order) (Order, error) {
	if err := conn(ctx, d.db).Create(&order).Error; err != nil {
		if isUniqueViolation(err) && strings.Contains(err.Error(), "reference") {
			return Order{}, ErrOrderReference
		}
		return Order{}, err
	}

	return order, nil
}

func (d *OrderDAO) FindByReference(ctx context.Context, reference string) (Order, error) {
	var order Order

	result := conn(ctx, d.db).
		Preload("Buyer").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&order, "reference = ?", reference)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

func (d *OrderDAO) FindAll(ctx context.Context) ([]Order, error) {
	var orders []Order

	result := conn(ctx, d.db).
		Preload("Buyer").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("id").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}
