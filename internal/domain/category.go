package domain

import "time"

// TicketCategory is a sellable grandstand category with a fixed unit price.
type TicketCategory struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
}

type InventoryRecord struct {
	ID         uint      `json:"id"`
	Category   string    `json:"category"`
	UnitPrice  int       `json:"unit_price"`
	TotalCount int       `json:"total_count"`
	SoldCount  int       `json:"sold_count"`
	Position   int       `json:"-"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Available is the number of tickets that can still be sold. It is never negative.
func (r InventoryRecord) Available() int {
	if r.SoldCount >= r.TotalCount {
		return 0
	}
	return r.TotalCount - r.SoldCount
}

func (r InventoryRecord) TicketCategory() TicketCategory {
	return TicketCategory{
		Name:      r.Category,
		UnitPrice: r.UnitPrice,
	}
}

// Availability is the public view of a record as shown on the ticket availability screen.
type Availability struct {
	Category  string `json:"category"`
	UnitPrice int    `json:"unit_price"`
	Total     int    `json:"total"`
	Sold      int    `json:"sold"`
	Available int    `json:"available"`
}

func (r InventoryRecord) Availability() Availability {
	return Availability{
		Category:  r.Category,
		UnitPrice: r.UnitPrice,
		Total:     r.TotalCount,
		Sold:      r.SoldCount,
		Available: r.Available(),
	}
}

func Availabilities(records []InventoryRecord) []Availability {
	out := make([]Availability, len(records))
	for i, r := range records {
		out[i] = r.Availability()
	}
	return out
}
