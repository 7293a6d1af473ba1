package order

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Domain errors for shipping addresses.
var (
	// ErrRecipientNameIsRequired is returned when the address has no recipient name.
	ErrRecipientNameIsRequired = errs.NewValueIsRequiredError("recipient name")
	// ErrContactIsRequired is returned when the address has no contact detail.
	ErrContactIsRequired = errs.NewValueIsRequiredError("contact")
	// ErrStreetIsRequired is returned when the address has no street line.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrCityIsRequired is returned when the address has no city.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrCountryIsRequired is returned when the address has no country.
	ErrCountryIsRequired = errs.NewValueIsRequiredError("country")
)

// ShippingAddress is the delivery destination captured at checkout: who to
// deliver to, how to reach them, where, and any delivery instructions.
// Immutable once the order is placed.
type ShippingAddress struct {
	recipientName string
	contact       string
	street        string
	city          string
	country       string
	instructions  string
}

// NewShippingAddress creates a validated shipping address. Recipient name,
// contact, street, city, and country are required; instructions are optional
// free text passed to the carrier.
func NewShippingAddress(recipientName, contact, street, city, country, instructions string) (ShippingAddress, error) {
	addr := ShippingAddress{
		recipientName: strings.TrimSpace(recipientName),
		contact:       strings.TrimSpace(contact),
		street:        strings.TrimSpace(street),
		city:          strings.TrimSpace(city),
		country:       strings.TrimSpace(country),
		instructions:  strings.TrimSpace(instructions),
	}

	var err error
	if addr.recipientName == "" {
		err = errors.Join(err, ErrRecipientNameIsRequired)
	}
	if addr.contact == "" {
		err = errors.Join(err, ErrContactIsRequired)
	}
	if addr.street == "" {
		err = errors.Join(err, ErrStreetIsRequired)
	}
	if addr.city == "" {
		err = errors.Join(err, ErrCityIsRequired)
	}
	if addr.country == "" {
		err = errors.Join(err, ErrCountryIsRequired)
	}
	if err != nil {
		return ShippingAddress{}, err
	}

	return addr, nil
}

// RecipientName returns who the shipment is addressed to.
func (a ShippingAddress) RecipientName() string {
	return a.recipientName
}

// Contact returns the phone number or email for delivery coordination.
func (a ShippingAddress) Contact() string {
	return a.contact
}

// Street returns the street line.
func (a ShippingAddress) Street() string {
	return a.street
}

// City returns the city.
func (a ShippingAddress) City() string {
	return a.city
}

// Country returns the country.
func (a ShippingAddress) Country() string {
	return a.country
}

// Instructions returns optional delivery instructions, possibly empty.
func (a ShippingAddress) Instructions() string {
	return a.instructions
}

// Validate returns an error for zero-value addresses.
func (a ShippingAddress) Validate() error {
	if a.recipientName == "" || a.street == "" {
		return ErrRecipientNameIsRequired
	}
	return nil
}
