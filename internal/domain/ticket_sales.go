package domain

import "fmt"

// TicketSalesStatus says whether the box office is open.
type TicketSalesStatus string

const (
	TicketSalesOpen   TicketSalesStatus = "open"
	TicketSalesClosed TicketSalesStatus = "closed"
)

// ParseTicketSalesStatus returns the status for s or ErrInvalidInput.
func ParseTicketSalesStatus(s string) (TicketSalesStatus, error) {
	switch st := TicketSalesStatus(s); st {
	case TicketSalesOpen, TicketSalesClosed:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown ticket sales status %q", ErrInvalidInput, s)
}

// TicketSales holds the ticketing switch of an event.
type TicketSales struct {
	Enabled bool              `json:"enabled"`
	Status  TicketSalesStatus `json:"status"`
}

// DefaultTicketSales is used when an event is created without ticketing settings.
func DefaultTicketSales() TicketSales {
	return TicketSales{Enabled: false, Status: TicketSalesClosed}
}

// IsOpen reports whether tickets may be sold under these settings alone.
func (t TicketSales) IsOpen() bool {
	return t.Enabled && t.Status == TicketSalesOpen
}
