package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// PaymentMethod identifies how the customer paid.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard is a credit or debit card payment.
	PaymentMethodCard

	// PaymentMethodCash is cash on delivery.
	PaymentMethodCash

	// PaymentMethodBankTransfer is a direct bank transfer.
	PaymentMethodBankTransfer

	// PaymentMethodOther covers wallet and voucher payments.
	PaymentMethodOther
)

// getPaymentMethodStrings returns wire names for all payment methods.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:      "unknown",
		PaymentMethodCard:         "card",
		PaymentMethodCash:         "cash",
		PaymentMethodBankTransfer: "bank_transfer",
		PaymentMethodOther:        "other",
	}
}

// PaymentMethodFromString parses a payment method name ("card", "cash", ...).
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the lowercase wire name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m < PaymentMethodCard || m > PaymentMethodOther {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus is the payment/refund sub-state machine. It evolves from
// payment actions only; shipment progress never writes it, and status
// aggregation only reads it.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means the payment has not been captured yet.
	PaymentPending

	// PaymentCompleted means the payment was captured in full.
	PaymentCompleted

	// PaymentFailed means capture failed. Terminal.
	PaymentFailed

	// PaymentRefunded means the full amount has been returned. Terminal.
	PaymentRefunded

	// PaymentPartiallyRefunded means part of the amount has been returned.
	PaymentPartiallyRefunded
)

// getPaymentStatusStrings returns wire names for all payment statuses.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:     "unknown",
		PaymentPending:           "pending",
		PaymentCompleted:         "completed",
		PaymentFailed:            "failed",
		PaymentRefunded:          "refunded",
		PaymentPartiallyRefunded: "partially_refunded",
	}
}

// PaymentStatusFromString parses a payment status wire name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentStatusUnknown && name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the lowercase wire name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s < PaymentPending || s > PaymentPartiallyRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// Domain errors for payment operations.
var (
	// ErrRefundExceedsAmount is the wrap target for refunds that would push
	// the cumulative refunded total past the original payment amount.
	ErrRefundExceedsAmount = errors.New("refund exceeds payment amount")
	// ErrRefundAmountIsInvalid is returned for zero or negative refund amounts.
	ErrRefundAmountIsInvalid = errs.NewValueIsInvalidError("refund amount")
	// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// RefundExceedsAmountError reports a refund rejected because it would exceed
// the original payment amount. The payment is left unchanged.
type RefundExceedsAmountError struct {
	Requested       float64
	AlreadyRefunded float64
	PaymentAmount   float64
}

func (e *RefundExceedsAmountError) Error() string {
	return fmt.Sprintf("%s: requested %.2f with %.2f of %.2f already refunded",
		ErrRefundExceedsAmount, e.Requested, e.AlreadyRefunded, e.PaymentAmount)
}

func (e *RefundExceedsAmountError) Unwrap() error {
	return ErrRefundExceedsAmount
}

// PaymentTransitionError reports a rejected payment state change.
// Wraps ErrInvalidTransition so callers classify it with the rest of the
// transition failures.
type PaymentTransitionError struct {
	From   PaymentStatus
	To     PaymentStatus
	Reason string
}

func (e *PaymentTransitionError) Error() string {
	return fmt.Sprintf("%s: payment: %s -> %s (%s)", ErrInvalidTransition, e.From, e.To, e.Reason)
}

func (e *PaymentTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Refund is one processed refund against a payment. Refunds are recorded
// only once processed, so they carry no separate sub-status.
type Refund struct {
	amount      float64
	reason      string
	processedAt time.Time
}

// Amount returns the refunded amount.
func (r Refund) Amount() float64 {
	return r.amount
}

// Reason returns the free-text refund reason.
func (r Refund) Reason() string {
	return r.reason
}

// ProcessedAt returns when the refund was processed.
func (r Refund) ProcessedAt() time.Time {
	return r.processedAt
}

// Payment is the payment state attached to one order: how it was paid, the
// captured amount, and an append-only refund trail.
//
// Invariants:
//   - the cumulative refunded amount never exceeds the payment amount
//   - status is PaymentPartiallyRefunded iff 0 < refunded < amount
//   - status is PaymentRefunded iff refunded equals the amount
//
// Example:
//
//	amount, _ := kernel.NewMoney(150, "USD")
//	payment, _ := order.NewPayment(order.PaymentMethodCard, amount)
//	if err := payment.Confirm(); err != nil {
//	    return err
//	}
type Payment struct {
	method  PaymentMethod
	amount  kernel.Money
	status  PaymentStatus
	refunds []Refund
}

// NewPayment creates a pending payment for the given method and amount.
func NewPayment(method PaymentMethod, amount kernel.Money) (*Payment, error) {
	if err := errors.Join(method.Validate(), amount.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		method: method,
		amount: amount,
		status: PaymentPending,
	}, nil
}

// RestorePayment reconstructs a payment from persistence, including its
// refund trail. The persisted status is trusted but validated for shape.
func RestorePayment(method PaymentMethod, amount kernel.Money, status PaymentStatus, refunds []Refund) (*Payment, error) {
	payment, err := NewPayment(method, amount)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	payment.status = status
	payment.refunds = append(payment.refunds, refunds...)
	return payment, nil
}

// RestoreRefund reconstructs one refund record from persistence.
func RestoreRefund(amount float64, reason string, processedAt time.Time) Refund {
	return Refund{amount: amount, reason: reason, processedAt: processedAt}
}

// Confirm marks a pending payment as captured. Only valid while pending.
func (p *Payment) Confirm() error {
	if p.status != PaymentPending {
		return &PaymentTransitionError{
			From:   p.status,
			To:     PaymentCompleted,
			Reason: "only pending payments can be confirmed",
		}
	}

	p.status = PaymentCompleted
	return nil
}

// Fail marks a pending payment as failed. Only valid while pending.
func (p *Payment) Fail() error {
	if p.status != PaymentPending {
		return &PaymentTransitionError{
			From:   p.status,
			To:     PaymentFailed,
			Reason: "only pending payments can fail",
		}
	}

	p.status = PaymentFailed
	return nil
}

// Refund records a processed refund and recomputes the payment status.
// Requires a captured payment (completed or partially refunded), a positive
// amount, and headroom under the original amount; otherwise the payment is
// left unchanged and a typed error is returned. A refund never touches
// order or sub-order status.
func (p *Payment) Refund(amount float64, reason string, processedAt time.Time) error {
	if p.status != PaymentCompleted && p.status != PaymentPartiallyRefunded {
		return &PaymentTransitionError{
			From:   p.status,
			To:     PaymentRefunded,
			Reason: "payment has not been captured",
		}
	}
	if amount <= 0 {
		return ErrRefundAmountIsInvalid
	}

	refunded := p.RefundedTotal()
	if refunded+amount > p.amount.Amount()+kernel.MoneyEpsilon {
		return &RefundExceedsAmountError{
			Requested:       amount,
			AlreadyRefunded: refunded,
			PaymentAmount:   p.amount.Amount(),
		}
	}

	p.refunds = append(p.refunds, Refund{
		amount:      amount,
		reason:      strings.TrimSpace(reason),
		processedAt: processedAt,
	})

	if kernel.AmountsEqual(p.RefundedTotal(), p.amount.Amount()) {
		p.status = PaymentRefunded
	} else {
		p.status = PaymentPartiallyRefunded
	}
	return nil
}

// RefundedTotal returns the cumulative refunded amount.
func (p *Payment) RefundedTotal() float64 {
	var total float64
	for _, r := range p.refunds {
		total += r.amount
	}
	return total
}

// IsFullyRefunded reports whether the whole payment amount has been returned.
func (p *Payment) IsFullyRefunded() bool {
	return p.status == PaymentRefunded
}

// Method returns how the customer paid.
func (p *Payment) Method() PaymentMethod {
	return p.method
}

// Amount returns the captured amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the current payment status.
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// Refunds returns a copy of the refund trail in processing order.
func (p *Payment) Refunds() []Refund {
	return append([]Refund{}, p.refunds...)
}
