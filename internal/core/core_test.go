package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/ticket-desk/internal/config"
	"github.com/vietanh2810/ticket-desk/internal/db"
	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/service"
)

const testSession = "desk"

type checkoutTestContext struct {
	core    *Core
	receipt domain.Receipt
	err     error
}

func (c *checkoutTestContext) theCatalog(table *godog.Table) error {
	gdb, err := db.OpenSQLite(":memory:")
	if err != nil {
		return err
	}

	var catalog []domain.InventoryRecord
	for i, row := range table.Rows[1:] {
		price, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		available, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return err
		}
		catalog = append(catalog, domain.InventoryRecord{
			Category:   row.Cells[0].Value,
			UnitPrice:  price,
			TotalCount: available,
			Position:   i,
		})
	}

	c.core = New(gdb, domain.VenueMap{})
	return c.core.Inventory.Seed(context.Background(), catalog)
}

func (c *checkoutTestContext) iAddTicketsToTheCart(amount, category string) error {
	_, c.err = c.core.Carts.Add(context.Background(), testSession, category, amount)
	return nil
}

func (c *checkoutTestContext) iCheckOutAs(name, email string) error {
	ctx := context.Background()
	if _, c.err = c.core.Orders.Begin(ctx, testSession); c.err != nil {
		return nil
	}

	c.receipt, c.err = c.core.Orders.Confirm(ctx, testSession, domain.Buyer{Name: name, Email: email})
	return nil
}

func (c *checkoutTestContext) iReviewTheCart() error {
	_, c.err = c.core.Orders.Begin(context.Background(), testSession)
	return c.err
}

func (c *checkoutTestContext) iEmptyTheCart() error {
	c.err = c.core.Carts.Clear(testSession)
	return nil
}

func (c *checkoutTestContext) iCancelTheReview() error {
	return c.core.Orders.Cancel(testSession)
}

func (c *checkoutTestContext) iConfirmAs(name, email string) error {
	c.receipt, c.err = c.core.Orders.Confirm(context.Background(), testSession, domain.Buyer{Name: name, Email: email})
	return nil
}

func (c *checkoutTestContext) theCartChangeIsRefused() error {
	if !errors.Is(c.err, service.ErrCartLocked) {
		return fmt.Errorf("expected %v, got %v", service.ErrCartLocked, c.err)
	}
	return nil
}

func (c *checkoutTestContext) theOrderIsConfirmedWithATotalOf(total int) error {
	if c.err != nil {
		return fmt.Errorf("expected a confirmed order, got %v", c.err)
	}
	if c.receipt.Total != total {
		return fmt.Errorf("expected total %d, got %d", total, c.receipt.Total)
	}
	if c.receipt.Reference == "" {
		return errors.New("the receipt has no reference")
	}
	return nil
}

func (c *checkoutTestContext) theOrderIsRefusedBecauseHasOnlyTickets(category string, available int) error {
	var stockErr *service.InsufficientStockError
	if !errors.As(c.err, &stockErr) {
		return fmt.Errorf("expected an insufficient stock error, got %v", c.err)
	}
	if stockErr.Category != category || stockErr.Available != available {
		return fmt.Errorf("expected %q with %d left, got %q with %d", category, available, stockErr.Category, stockErr.Available)
	}
	return nil
}

func (c *checkoutTestContext) theCommitIsRefusedForLackOfTickets() error {
	if !errors.Is(c.err, service.ErrInsufficientStock) {
		return fmt.Errorf("expected %v, got %v", service.ErrInsufficientStock, c.err)
	}
	return nil
}

func (c *checkoutTestContext) hasTicketsAvailable(category string, expected int) error {
	available, err := c.core.Inventory.Available(context.Background(), category)
	if err != nil {
		return err
	}
	if available != expected {
		return fmt.Errorf("expected %d %q tickets available, got %d", expected, category, available)
	}
	return nil
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	return c.theCartHasLines(0)
}

func (c *checkoutTestContext) theCartHasLines(expected int) error {
	if got := len(c.core.Carts.Lines(testSession)); got != expected {
		return fmt.Errorf("expected %d cart lines, got %d", expected, got)
	}
	return nil
}

func (c *checkoutTestContext) ordersAreStored(expected int) error {
	orders, err := c.core.Orders.ListOrders(context.Background())
	if err != nil {
		return err
	}
	if len(orders) != expected {
		return fmt.Errorf("expected %d stored orders, got %d", expected, len(orders))
	}
	return nil
}

func (c *checkoutTestContext) theAmountIsRejected() error {
	if !errors.Is(c.err, domain.ErrBadAmount) {
		return fmt.Errorf("expected %v, got %v", domain.ErrBadAmount, c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCheckoutFailsBecauseTheCartIsEmpty() error {
	if !errors.Is(c.err, service.ErrEmptyCart) {
		return fmt.Errorf("expected %v, got %v", service.ErrEmptyCart, c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*tc = checkoutTestContext{}
		return ctx, nil
	})

	ctx.Step(`^the catalog:$`, tc.theCatalog)

	ctx.Step(`^I add "([^"]*)" tickets of "([^"]*)" to the cart$`, tc.iAddTicketsToTheCart)
	ctx.Step(`^I check out as "([^"]*)" with email "([^"]*)"$`, tc.iCheckOutAs)
	ctx.Step(`^I review the cart$`, tc.iReviewTheCart)
	ctx.Step(`^I empty the cart$`, tc.iEmptyTheCart)
	ctx.Step(`^I cancel the review$`, tc.iCancelTheReview)
	ctx.Step(`^I confirm as "([^"]*)" with email "([^"]*)"$`, tc.iConfirmAs)

	ctx.Step(`^the order is confirmed with a total of (\d+)$`, tc.theOrderIsConfirmedWithATotalOf)
	ctx.Step(`^the order is refused because "([^"]*)" has only (\d+) tickets$`, tc.theOrderIsRefusedBecauseHasOnlyTickets)
	ctx.Step(`^the commit is refused for lack of tickets$`, tc.theCommitIsRefusedForLackOfTickets)
	ctx.Step(`^the cart change is refused$`, tc.theCartChangeIsRefused)
	ctx.Step(`^"([^"]*)" has (\d+) tickets available$`, tc.hasTicketsAvailable)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^(\d+) orders? (?:is|are) stored$`, tc.ordersAreStored)
	ctx.Step(`^the amount is rejected$`, tc.theAmountIsRejected)
	ctx.Step(`^the checkout fails because the cart is empty$`, tc.theCheckoutFailsBecauseTheCartIsEmpty)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func TestCatalogFromConfig(t *testing.T) {
	records := CatalogFromConfig([]config.CatalogEntry{
		{Name: "Super Gold", UnitPrice: 450, TotalCount: 40},
		{Name: "Gold 1", UnitPrice: 300, TotalCount: 60},
	})

	assert.Equal(t, []domain.InventoryRecord{
		{Category: "Super Gold", UnitPrice: 450, TotalCount: 40, Position: 0},
		{Category: "Gold 1", UnitPrice: 300, TotalCount: 60, Position: 1},
	}, records)
}

func TestVenueFromConfig(t *testing.T) {
	assert.Equal(t, domain.VenueMap{}, VenueFromConfig(nil))

	venue := VenueFromConfig(&config.VenueConfig{
		Title:       "Choose the proper grandstand!",
		Grandstands: []config.GrandstandConfig{{Name: "Main straight", Category: "Super Gold"}},
	})

	assert.Equal(t, "Choose the proper grandstand!", venue.Title)
	assert.Equal(t, []domain.Grandstand{{Name: "Main straight", Category: "Super Gold"}}, venue.Grandstands)
}
