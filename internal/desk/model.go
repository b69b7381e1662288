// Package desk is the terminal front of the ticket desk: a bubbletea model
// over a single shell.Session.
package desk

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vietanh2810/ticket-desk/internal/domain"
	"github.com/vietanh2810/ticket-desk/internal/shell"
)

type pane int

const (
	paneCategories pane = iota
	paneCart
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldAddress
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Address"}

type Model struct {
	ctx     context.Context
	session *shell.Session
	keys    KeyMap
	styles  styles

	focus      pane
	cursor     int
	cartCursor int
	quantity   textinput.Model

	form      [fieldCount]textinput.Model
	formFocus int

	tickets []domain.Availability
	venue   domain.VenueMap
	alert   *shell.Alert

	width  int
	height int
}

// NewModel expects a started session.
func NewModel(ctx context.Context, session *shell.Session) Model {
	quantity := textinput.New()
	quantity.Prompt = ""
	quantity.CharLimit = 9
	quantity.Focus()

	var form [fieldCount]textinput.Model
	for i := range form {
		form[i] = textinput.New()
		form[i].Prompt = ""
		form[i].CharLimit = 100
		form[i].Placeholder = fieldLabels[i]
	}
	form[fieldAddress].CharLimit = 200

	m := Model{
		ctx:      ctx,
		session:  session,
		keys:     DefaultKeyMap,
		styles:   defaultStyles(),
		quantity: quantity,
		form:     form,
	}
	m.loadQuantity()

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// An open alert swallows every key until it is dismissed.
		if m.alert != nil {
			if key.Matches(msg, m.keys.Dismiss) {
				m.alert = nil
			}
			return m, nil
		}

		switch m.session.Screen() {
		case shell.ScreenStart:
			return m.updateStart(msg)
		case shell.ScreenOrderDetails:
			return m.updateOrderDetails(msg)
		case shell.ScreenAcknowledgement:
			if key.Matches(msg, m.keys.Dismiss) {
				m.reset()
			}
			return m, nil
		case shell.ScreenTicketAvailability, shell.ScreenVenueMap:
			if key.Matches(msg, m.keys.Back) {
				m.session.Back()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusToggle):
		if m.focus == paneCategories {
			m.storeQuantity()
			m.focus = paneCart
			m.quantity.Blur()
			return m, nil
		}
		m.focus = paneCategories
		return m, m.quantity.Focus()

	case key.Matches(msg, m.keys.Up):
		m.move(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.move(1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.storeQuantity()
		if _, alert := m.session.Next(m.ctx); alert != nil {
			m.alert = alert
			return m, nil
		}
		return m, m.focusField(fieldName)

	case key.Matches(msg, m.keys.Tickets):
		m.storeQuantity()
		tickets, alert := m.session.Tickets(m.ctx)
		if alert != nil {
			m.alert = alert
			return m, nil
		}
		m.tickets = tickets
		return m, nil

	case key.Matches(msg, m.keys.Map):
		m.storeQuantity()
		m.venue = m.session.Map()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	}

	if m.focus == paneCart {
		if key.Matches(msg, m.keys.Delete) {
			index := m.cartCursor
			if len(m.session.Cart().Lines) == 0 {
				index = -1
			}
			m.alert = m.session.DeleteLine(index)
			m.clampCartCursor()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Add) {
		category, ok := m.selectedCategory()
		if !ok {
			return m, nil
		}
		m.alert = m.session.AddToCart(m.ctx, category, m.quantity.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)
	return m, cmd
}

func (m Model) updateOrderDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.alert = m.session.Cancel()
		m.clearForm()
		return m, m.quantity.Focus()

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.formFocus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PreviousField):
		return m, m.focusField((m.formFocus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.Confirm), msg.Type == tea.KeyEnter && m.formFocus == fieldAddress:
		_, alert := m.session.Confirm(m.ctx, m.buyer())
		if alert != nil {
			m.alert = alert
			if m.session.Screen() == shell.ScreenStart {
				m.focus = paneCategories
				return m, m.quantity.Focus()
			}
			return m, nil
		}
		m.clearForm()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m, m.focusField(m.formFocus + 1)
	}

	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) {
	if m.focus == paneCart {
		m.cartCursor += delta
		m.clampCartCursor()
		return
	}

	categories := m.session.Categories()
	if len(categories) == 0 {
		return
	}

	m.storeQuantity()
	m.cursor = (m.cursor + delta + len(categories)) % len(categories)
	m.loadQuantity()
}

func (m *Model) clampCartCursor() {
	lines := len(m.session.Cart().Lines)
	if m.cartCursor >= lines {
		m.cartCursor = lines - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

func (m Model) selectedCategory() (string, bool) {
	categories := m.session.Categories()
	if m.cursor >= len(categories) {
		return "", false
	}
	return categories[m.cursor].Name, true
}

func (m *Model) storeQuantity() {
	if category, ok := m.selectedCategory(); ok {
		m.session.SetInput(category, m.quantity.Value())
	}
}

func (m *Model) loadQuantity() {
	if category, ok := m.selectedCategory(); ok {
		m.quantity.SetValue(m.session.Input(category))
		m.quantity.CursorEnd()
	}
}

func (m *Model) focusField(field int) tea.Cmd {
	if field >= fieldCount {
		field = fieldCount - 1
	}

	for i := range m.form {
		m.form[i].Blur()
	}
	m.formFocus = field

	return m.form[field].Focus()
}

func (m *Model) clearForm() {
	for i := range m.form {
		m.form[i].SetValue("")
		m.form[i].Blur()
	}
	m.formFocus = fieldName
}

func (m Model) buyer() domain.Buyer {
	return domain.Buyer{
		Name:    m.form[fieldName].Value(),
		Email:   m.form[fieldEmail].Value(),
		Phone:   m.form[fieldPhone].Value(),
		Address: m.form[fieldAddress].Value(),
	}
}

// reset goes back to an empty start screen with every quantity at "1".
func (m *Model) reset() {
	m.session.Reset()
	m.clearForm()
	m.focus = paneCategories
	m.cartCursor = 0
	m.loadQuantity()
	m.quantity.Focus()
}
