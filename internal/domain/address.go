package domain

import (
	"fmt"
	"strings"
)

// Address is the venue of an in-person or hybrid event.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// NewAddress trims every field and requires all of them.
func NewAddress(street, city, state, zip, country string) (Address, error) {
	a := Address{
		Street:  strings.TrimSpace(street),
		City:    strings.TrimSpace(city),
		State:   strings.TrimSpace(state),
		Zip:     strings.TrimSpace(zip),
		Country: strings.TrimSpace(country),
	}
	if is := a.issues(); len(is) > 0 {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidInput, is[0].Message)
	}
	return a, nil
}

func (a Address) issues() issues {
	var is issues
	for _, f := range []struct{ name, value string }{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zip", a.Zip},
		{"country", a.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			is.add(f.name, f.name+" is required")
		}
	}
	return is
}
