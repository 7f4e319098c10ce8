package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the shipping-destination snapshot carried by an order. It is a
// value object: reprint orders copy it verbatim from the original order so
// the remanufactured goods ship to the same destination.
type Customer struct {
	name         string
	phone        string
	address      string
	provinceCode string
	districtCode string
	wardCode     string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer snapshot.
// Name, phone and address are required; the destination codes are free-form
// carrier routing hints and may be empty.
func NewCustomer(name, phone, address, provinceCode, districtCode, wardCode string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer address")
	}

	return Customer{
		name:         name,
		phone:        phone,
		address:      address,
		provinceCode: provinceCode,
		districtCode: districtCode,
		wardCode:     wardCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the recipient name.
func (c Customer) Name() string { return c.name }

// Phone returns the recipient phone number.
func (c Customer) Phone() string { return c.phone }

// Address returns the street address.
func (c Customer) Address() string { return c.address }

// ProvinceCode returns the carrier province routing code.
func (c Customer) ProvinceCode() string { return c.provinceCode }

// DistrictCode returns the carrier district routing code.
func (c Customer) DistrictCode() string { return c.districtCode }

// WardCode returns the carrier ward routing code.
func (c Customer) WardCode() string { return c.wardCode }
