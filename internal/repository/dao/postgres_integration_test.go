package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openPostgres starts a throwaway postgres container. The test is skipped when docker is not reachable.
func openPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=tickets",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=tickets",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("host=localhost port=%s user=tickets password=secret dbname=tickets sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = time.Minute
	err = pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestPostgres_InventoryAndOrders(t *testing.T) {
	ctx := context.Background()
	db := openPostgres(t)

	inventory := NewInventoryDAO(db)
	_, err := inventory.InsertMissing(ctx, []TicketCategory{
		{Name: "Gold 1", UnitPrice: 300, TotalCount: 5, Position: 1},
		{Name: "Bronze 2", UnitPrice: 100, TotalCount: 3, Position: 6},
	})
	require.NoError(t, err)

	_, err = inventory.Insert(ctx, TicketCategory{Name: "Gold 1", UnitPrice: 300, TotalCount: 5})
	assert.ErrorIs(t, err, ErrCategoryExists)

	_, err = placeOrder(ctx, db, Order{
		Reference: "pg-1",
		Buyer:     Buyer{Name: "Ada Lovelace", Email: "ada@example.com"},
		Lines:     []OrderLine{{Category: "Gold 1", UnitPrice: 300, Quantity: 2}},
		Total:     600,
	})
	require.NoError(t, err)

	_, err = placeOrder(ctx, db, Order{
		Reference: "pg-2",
		Buyer:     Buyer{Name: "Grace Hopper", Email: "grace@example.com"},
		Lines:     []OrderLine{{Category: "Bronze 2", UnitPrice: 100, Quantity: 10}},
		Total:     1000,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	gold, err := inventory.FindByName(ctx, "Gold 1")
	require.NoError(t, err)
	assert.Equal(t, 2, gold.SoldCount)

	bronze, err := inventory.FindByName(ctx, "Bronze 2")
	require.NoError(t, err)
	assert.Zero(t, bronze.SoldCount)

	placed, err := NewOrderDAO(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, "pg-1", placed[0].Reference)
}
