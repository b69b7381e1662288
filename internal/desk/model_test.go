package desk

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/ticket-desk/internal/core"
	"github.com/vietanh2810/ticket-desk/internal/db"
	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/shell"
)

func testModel(t *testing.T) (Model, *core.Core) {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)

	ctx := context.Background()
	c := core.New(gdb, domain.VenueMap{
		Grandstands: []domain.Grandstand{{Name: "Main straight", Category: "Super Gold", Description: "Start-finish line"}},
	})
	require.NoError(t, c.Inventory.Seed(ctx, []domain.InventoryRecord{
		{Category: "Super Gold", UnitPrice: 450, TotalCount: 40, Position: 0},
		{Category: "Gold 1", UnitPrice: 300, TotalCount: 5, Position: 1},
		{Category: "Bronze 2", UnitPrice: 100, TotalCount: 3, Position: 2},
	}))

	session := shell.NewSession("desk", c.Inventory, c.Carts, c.Orders, c.Venue)
	require.NoError(t, session.Start(ctx))

	return NewModel(ctx, session), c
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	ctrlN     = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlS     = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlT     = tea.KeyMsg{Type: tea.KeyCtrlT}
	ctrlG     = tea.KeyMsg{Type: tea.KeyCtrlG}
	ctrlR     = tea.KeyMsg{Type: tea.KeyCtrlR}
	deleteKey = tea.KeyMsg{Type: tea.KeyDelete}
)

func TestStartScreen(t *testing.T) {
	m, _ := testModel(t)

	assert.Equal(t, shell.ScreenStart, m.session.Screen())
	assert.Equal(t, "1", m.quantity.Value())

	view := m.View()
	assert.Contains(t, view, "Welcome to the Ticket System!")
	assert.Contains(t, view, "Super Gold")
	assert.Contains(t, view, "Shopping cart is empty")
}

func TestBuyTickets(t *testing.T) {
	m, c := testModel(t)

	// Select Gold 1, type 2 and add it.
	m = send(t, m, down, backspace, runes("2"), enter)
	require.Nil(t, m.alert)
	require.Len(t, m.session.Cart().Lines, 1)
	assert.Equal(t, 600, m.session.Cart().Total)

	m = send(t, m, ctrlN)
	require.Nil(t, m.alert)
	require.Equal(t, shell.ScreenOrderDetails, m.session.Screen())
	assert.Contains(t, m.View(), "Finalize your order!")

	m = send(t, m, runes("Ada Lovelace"), tab, runes("ada@example.com"), ctrlS)
	require.Nil(t, m.alert)
	require.Equal(t, shell.ScreenAcknowledgement, m.session.Screen())
	assert.Contains(t, m.View(), "Ada Lovelace")

	available, err := c.Inventory.Available(context.Background(), "Gold 1")
	require.NoError(t, err)
	assert.Equal(t, 3, available)

	m = send(t, m, enter)
	assert.Equal(t, shell.ScreenStart, m.session.Screen())
	assert.Empty(t, m.session.Cart().Lines)
	assert.Equal(t, "1", m.session.Input("Gold 1"))
}

func TestBadAmountAlert(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, backspace, runes("0"), enter)

	require.NotNil(t, m.alert)
	assert.Equal(t, "Bad amount", m.alert.Header)
	assert.Contains(t, m.View(), "Please give an integer which is greater than 0")
	assert.Empty(t, m.session.Cart().Lines)

	m = send(t, m, runes("5"))
	assert.NotNil(t, m.alert, "keys are swallowed while the alert is open")

	m = send(t, m, enter)
	assert.Nil(t, m.alert)
}

func TestNotEnoughTicketsAlert(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, down, down, backspace, runes("10"), enter, ctrlN)

	require.NotNil(t, m.alert)
	assert.Equal(t, "No enough ticket", m.alert.Header)
	assert.Equal(t, shell.ScreenStart, m.session.Screen())
	assert.Len(t, m.session.Cart().Lines, 1)
}

func TestEmptyCartAndNoSelection(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, ctrlN)
	require.NotNil(t, m.alert)
	assert.Equal(t, "Shopping cart is empty", m.alert.Header)

	m = send(t, m, esc, tab, deleteKey)
	require.NotNil(t, m.alert)
	assert.Equal(t, "No Selection", m.alert.Header)
}

func TestDeleteCartLine(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, enter, down, enter, tab, down, deleteKey)

	require.Nil(t, m.alert)
	lines := m.session.Cart().Lines
	require.Len(t, lines, 1)
	assert.Equal(t, "Super Gold", lines[0].Category)
}

func TestCancelOrderDetails(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, enter, ctrlN, runes("Ada"), esc)

	assert.Equal(t, shell.ScreenStart, m.session.Screen())
	assert.Len(t, m.session.Cart().Lines, 1)
	assert.Empty(t, m.form[fieldName].Value())
}

func TestTicketsAndMapScreens(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, ctrlT)
	require.Equal(t, shell.ScreenTicketAvailability, m.session.Screen())
	assert.Contains(t, m.View(), "These are the available ticket now")
	assert.Len(t, m.tickets, 3)

	m = send(t, m, esc, ctrlG)
	require.Equal(t, shell.ScreenVenueMap, m.session.Screen())
	view := m.View()
	assert.Contains(t, view, "Choose the proper grandstand!")
	assert.Contains(t, view, "Main straight")

	m = send(t, m, esc)
	assert.Equal(t, shell.ScreenStart, m.session.Screen())
}

func TestResetRestoresQuantities(t *testing.T) {
	m, _ := testModel(t)

	m = send(t, m, backspace, runes("7"), enter, down, backspace, runes("3"), ctrlR)

	assert.Empty(t, m.session.Cart().Lines)
	for _, category := range m.session.Categories() {
		assert.Equal(t, "1", m.session.Input(category.Name))
	}
	assert.Equal(t, "1", m.quantity.Value())
}

func TestRenderAlert(t *testing.T) {
	view := RenderAlert(shell.AlertNoConnection)

	assert.True(t, strings.Contains(view, "No connection"))
	assert.Contains(t, view, "Sorry, there is no connection with the database")
}
