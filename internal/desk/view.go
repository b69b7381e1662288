package desk

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/shell"
)

func (m Model) View() string {
	screen := m.session.Screen()

	var body string
	switch screen {
	case shell.ScreenStart:
		body = m.viewStart()
	case shell.ScreenOrderDetails:
		body = m.viewOrderDetails()
	case shell.ScreenAcknowledgement:
		body = m.viewAcknowledgement()
	case shell.ScreenTicketAvailability:
		body = m.viewTickets()
	case shell.ScreenVenueMap:
		body = m.viewMap()
	}

	view := m.styles.title.Render(screen.Title()) + "\n" + body
	if m.alert != nil {
		view += "\n\n" + m.viewAlert(*m.alert)
	}

	return view
}

func (m Model) viewStart() string {
	var categories strings.Builder
	categories.WriteString(m.styles.header.Render(fmt.Sprintf("%-12s %6s  %s", "Category", "Price", "Amount")))
	for i, c := range m.session.Categories() {
		input := m.session.Input(c.Name)
		if i == m.cursor && m.focus == paneCategories {
			input = m.quantity.View()
		}
		row := fmt.Sprintf("%-12s %6d  %s", c.Name, c.UnitPrice, input)
		if i == m.cursor {
			row = m.styles.selected.Render(row)
		}
		categories.WriteString("\n" + row)
	}

	cart := m.session.Cart()
	var lines strings.Builder
	lines.WriteString(m.styles.header.Render(fmt.Sprintf("%-12s %6s %8s", "Category", "Amount", "Price")))
	if len(cart.Lines) == 0 {
		lines.WriteString("\n" + m.styles.faint.Render("Shopping cart is empty"))
	}
	for i, l := range cart.Lines {
		row := fmt.Sprintf("%-12s %6d %8d", l.Category, l.Quantity, l.Subtotal())
		if i == m.cartCursor && m.focus == paneCart {
			row = m.styles.selected.Render(row)
		}
		lines.WriteString("\n" + row)
	}
	lines.WriteString("\n" + m.styles.total.Render(fmt.Sprintf("%-12s %15d", "Total", cart.Total)))

	left, right := m.styles.pane, m.styles.pane
	if m.focus == paneCategories {
		left = m.styles.focused
	} else {
		right = m.styles.focused
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left.Render(categories.String()), " ", right.Render(lines.String()))

	return panes + m.help(m.keys.Add, m.keys.FocusToggle, m.keys.Delete, m.keys.Next, m.keys.Tickets, m.keys.Map, m.keys.Reset, m.keys.Quit)
}

func (m Model) viewOrderDetails() string {
	var b strings.Builder

	if checkout := m.session.Checkout(); checkout != nil {
		for _, l := range checkout.Lines {
			b.WriteString(fmt.Sprintf("%-12s x%-4d %8d\n", l.Category, l.Quantity, l.Subtotal()))
		}
		b.WriteString(m.styles.total.Render(fmt.Sprintf("Total %d", checkout.Total)) + "\n\n")
	}

	for i, label := range fieldLabels {
		b.WriteString(fmt.Sprintf("%-8s %s\n", label, m.form[i].View()))
	}

	return m.styles.pane.Render(strings.TrimSuffix(b.String(), "\n")) + m.help(m.keys.NextField, m.keys.Confirm, m.keys.Back)
}

func (m Model) viewAcknowledgement() string {
	receipt := m.session.Receipt()
	if receipt == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Thank you %s, your order has been placed.\n", receipt.BuyerName))
	b.WriteString(fmt.Sprintf("Reference: %s\n", receipt.Reference))
	b.WriteString(fmt.Sprintf("Confirmation sent to %s\n\n", receipt.Email))
	for _, l := range receipt.Lines {
		b.WriteString(fmt.Sprintf("%-12s x%-4d %8d\n", l.Category, l.Quantity, l.Subtotal()))
	}
	b.WriteString(m.styles.total.Render(fmt.Sprintf("Total %d", receipt.Total)))

	return m.styles.pane.Render(b.String()) + m.help(m.keys.Dismiss)
}

func (m Model) viewTickets() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("%-12s %6s %9s", "Category", "Price", "Available")))
	for _, t := range m.tickets {
		b.WriteString("\n" + availabilityRow(t))
	}

	return m.styles.pane.Render(b.String()) + m.help(m.keys.Back)
}

func availabilityRow(t domain.Availability) string {
	return fmt.Sprintf("%-12s %6d %9d", t.Category, t.UnitPrice, t.Available)
}

func (m Model) viewMap() string {
	var b strings.Builder
	for i, g := range m.venue.Grandstands {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-16s %s", g.Name, m.styles.header.Render(g.Category)))
		if g.Description != "" {
			b.WriteString("\n  " + m.styles.faint.Render(g.Description))
		}
	}

	return m.styles.pane.Render(b.String()) + m.help(m.keys.Back)
}

func (m Model) viewAlert(a shell.Alert) string {
	style := m.styles.warning
	if a.Level == shell.LevelError {
		style = m.styles.error
	}

	return style.Render(fmt.Sprintf("%s\n\n%s\n%s", a.Title, m.styles.header.Render(a.Header), a.Content))
}

func (m Model) help(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "\n" + m.styles.help.Render(strings.Join(parts, " • "))
}

// RenderAlert draws an alert outside of a running program, for failures before the desk starts.
func RenderAlert(a shell.Alert) string {
	return Model{styles: defaultStyles()}.viewAlert(a)
}
