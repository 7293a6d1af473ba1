package kernel

import (
	"fmt"
	"math"
	"strings"

	"marketplace/internal/pkg/errs"
)

// MoneyEpsilon is the tolerance used when comparing monetary amounts.
// Pricing arrives as floating point from upstream carts; derived totals are
// checked within half a minor unit rather than for exact equality.
const MoneyEpsilon = 0.005

// ErrCurrencyIsRequired is returned when constructing Money without a currency code.
var ErrCurrencyIsRequired = errs.NewValueIsRequiredError("currency")

// Money is a value object pairing an amount with an ISO 4217 currency code.
// Amounts may be zero but never negative; negative adjustments (discounts,
// refunds) are modeled as positive amounts subtracted by the owning entity.
//
// Example:
//
//	total, err := kernel.NewMoney(249.90, "USD")
//	if err != nil {
//	    // handle error
//	}
type Money struct {
	amount   float64
	currency string
}

// NewMoney creates a Money value. The amount must be non-negative and finite,
// and the currency must be a three-letter code.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a valid monetary amount", amount))
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, ErrCurrencyIsRequired
	}
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual reports whether two Money values share a currency and their amounts
// differ by less than MoneyEpsilon.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && AmountsEqual(m.amount, other.amount)
}

// String returns the amount and currency in "123.45 USD" form.
func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}

// Validate returns an error for the zero value, which carries no currency.
func (m Money) Validate() error {
	if m.currency == "" {
		return ErrCurrencyIsRequired
	}
	return nil
}

// AmountsEqual compares two raw amounts within MoneyEpsilon. Used anywhere
// derived totals are checked against supplied pricing.
func AmountsEqual(a, b float64) bool {
	return math.Abs(a-b) < MoneyEpsilon
}
