package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	ErrBadAmount   = errors.New("please give an integer which is greater than 0")
	ErrNoSelection = errors.New("please select a ticket to remove")
)

// A positive base-10 integer that is not made only of zeros.
var quantityExp = regexp2.MustCompile(`^(?!0+$)\d+$`, regexp2.None)

type CartLine struct {
	Category  string `json:"category"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

func (l CartLine) Subtotal() int {
	return l.UnitPrice * l.Quantity
}

// NewCartLine builds a line for the given category from raw user input.
// The input is rejected before any line exists when it is not a positive integer.
func NewCartLine(category TicketCategory, input string) (CartLine, error) {
	quantity, err := ParseQuantity(input)
	if err != nil {
		return CartLine{}, err
	}

	return CartLine{
		Category:  category.Name,
		UnitPrice: category.UnitPrice,
		Quantity:  quantity,
	}, nil
}

// ParseQuantity accepts only positive integers, e.g. "3". "0", "-3" and "abc" are rejected.
func ParseQuantity(input string) (int, error) {
	input = strings.TrimSpace(input)

	ok, err := quantityExp.MatchString(input)
	if err != nil || !ok {
		return 0, ErrBadAmount
	}

	quantity, err := strconv.Atoi(input)
	if err != nil {
		// Overflow.
		return 0, ErrBadAmount
	}

	return quantity, nil
}

// Cart is an ordered collection of lines. Adding a category that is already
// in the cart appends a new line instead of merging.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(line CartLine) {
	c.lines = append(c.lines, line)
}

// Remove deletes the line at index. An index outside the cart leaves it unchanged.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrNoSelection
	}

	c.lines = append(c.lines[:index:index], c.lines[index+1:]...)

	return nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a snapshot of the cart content.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() int {
	return LinesTotal(c.lines)
}

func LinesTotal(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// QuantitiesByCategory sums requested quantities per category, keeping duplicate lines apart in the cart.
func QuantitiesByCategory(lines []CartLine) map[string]int {
	out := make(map[string]int, len(lines))
	for _, l := range lines {
		out[l.Category] += l.Quantity
	}
	return out
}
