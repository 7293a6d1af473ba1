package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrPricingMismatch is the wrap target for pricing that disagrees with the
// amounts derived from it. No order is ever created from mismatched pricing.
var ErrPricingMismatch = errors.New("pricing mismatch")

// PricingMismatchError reports a supplied pricing figure that disagrees with
// the value computed from its parts beyond the money tolerance.
type PricingMismatchError struct {
	Field    string
	Computed float64
	Supplied float64
}

// NewPricingMismatchError creates a PricingMismatchError for one pricing field.
func NewPricingMismatchError(field string, computed, supplied float64) *PricingMismatchError {
	return &PricingMismatchError{Field: field, Computed: computed, Supplied: supplied}
}

func (e *PricingMismatchError) Error() string {
	return fmt.Sprintf("%s: %s is %.2f, computed %.2f", ErrPricingMismatch, e.Field, e.Supplied, e.Computed)
}

func (e *PricingMismatchError) Unwrap() error {
	return ErrPricingMismatch
}

// Pricing is the checkout price breakdown of an order. The total is a
// checked invariant, not an input the system trusts:
//
//	total == subtotal + shipping + tax - discount
//
// within kernel.MoneyEpsilon. All components are non-negative; discounts are
// positive amounts subtracted from the total.
type Pricing struct {
	subtotal float64
	shipping float64
	tax      float64
	discount float64
	total    float64
	currency string
}

// NewPricing creates a validated price breakdown. Fails with
// PricingMismatchError when the supplied total disagrees with the computed
// one beyond tolerance.
func NewPricing(subtotal, shipping, tax, discount, total float64, currency string) (Pricing, error) {
	money, err := kernel.NewMoney(total, currency)
	if err != nil {
		return Pricing{}, err
	}

	for name, v := range map[string]float64{
		"subtotal": subtotal,
		"shipping": shipping,
		"tax":      tax,
		"discount": discount,
	} {
		if v < 0 {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%v is negative", v))
		}
	}

	computed := subtotal + shipping + tax - discount
	if !kernel.AmountsEqual(computed, total) {
		return Pricing{}, NewPricingMismatchError("total", computed, total)
	}

	return Pricing{
		subtotal: subtotal,
		shipping: shipping,
		tax:      tax,
		discount: discount,
		total:    total,
		currency: money.Currency(),
	}, nil
}

// Subtotal returns the sum of all item line totals.
func (p Pricing) Subtotal() float64 {
	return p.subtotal
}

// Shipping returns the shipping cost.
func (p Pricing) Shipping() float64 {
	return p.shipping
}

// Tax returns the tax amount.
func (p Pricing) Tax() float64 {
	return p.tax
}

// Discount returns the discount amount.
func (p Pricing) Discount() float64 {
	return p.discount
}

// Total returns the checked order total.
func (p Pricing) Total() float64 {
	return p.total
}

// Currency returns the three-letter currency code.
func (p Pricing) Currency() string {
	return p.currency
}

// TotalMoney returns the total as a Money value.
func (p Pricing) TotalMoney() kernel.Money {
	money, _ := kernel.NewMoney(p.total, p.currency)
	return money
}

// Validate returns an error for zero-value pricing.
func (p Pricing) Validate() error {
	if p.currency == "" {
		return kernel.ErrCurrencyIsRequired
	}
	return nil
}
