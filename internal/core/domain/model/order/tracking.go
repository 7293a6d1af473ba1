package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

// TrackingStatus represents one carrier-reported shipment milestone.
// Carriers are monotonic by intent, but webhooks deliver at-least-once and
// out of order; TrackingTimeline absorbs that rather than trusting it.
type TrackingStatus int

const (
	// TrackingUnknown represents an invalid or undefined tracking status.
	TrackingUnknown TrackingStatus = iota

	// TrackingShipped marks carrier pickup.
	TrackingShipped

	// TrackingInTransit marks movement between carrier facilities.
	TrackingInTransit

	// TrackingOutForDelivery marks the final delivery leg.
	TrackingOutForDelivery

	// TrackingDelivered marks successful delivery. Drives the automatic
	// sub-order Shipped → Delivered transition.
	TrackingDelivered

	// TrackingFailedDelivery marks a failed delivery attempt.
	TrackingFailedDelivery

	// TrackingReturned marks a shipment returned to the vendor.
	TrackingReturned
)

// getTrackingStatusStrings returns wire names for all tracking statuses.
func getTrackingStatusStrings() map[TrackingStatus]string {
	return map[TrackingStatus]string{
		TrackingUnknown:        "unknown",
		TrackingShipped:        "shipped",
		TrackingInTransit:      "in_transit",
		TrackingOutForDelivery: "out_for_delivery",
		TrackingDelivered:      "delivered",
		TrackingFailedDelivery: "failed_delivery",
		TrackingReturned:       "returned",
	}
}

// TrackingStatusFromString parses a carrier webhook status name.
func TrackingStatusFromString(s string) (TrackingStatus, error) {
	for status, name := range getTrackingStatusStrings() {
		if status != TrackingUnknown && name == s {
			return status, nil
		}
	}
	return TrackingUnknown, errs.NewValueIsInvalidErrorWithCause("tracking status",
		fmt.Errorf("%q is not a valid tracking status", s))
}

// String returns the lowercase wire name of the tracking status.
func (s TrackingStatus) String() string {
	if str, ok := getTrackingStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the tracking status is one of the defined milestones.
func (s TrackingStatus) Validate() error {
	if s < TrackingShipped || s > TrackingReturned {
		return errs.NewValueIsInvalidErrorWithCause("tracking status",
			fmt.Errorf("%d is not a valid tracking status", s))
	}
	return nil
}

// Carrier identifies the shipping carrier for a tracking timeline.
type Carrier int

const (
	// CarrierUnknown represents an invalid or undefined carrier.
	CarrierUnknown Carrier = iota

	// CarrierUPS is United Parcel Service.
	CarrierUPS

	// CarrierFedEx is FedEx.
	CarrierFedEx

	// CarrierDHL is DHL.
	CarrierDHL

	// CarrierAramex is Aramex.
	CarrierAramex

	// CarrierOther covers regional carriers without a dedicated value.
	CarrierOther
)

// getCarrierStrings returns wire names for all carriers.
func getCarrierStrings() map[Carrier]string {
	return map[Carrier]string{
		CarrierUnknown: "unknown",
		CarrierUPS:     "ups",
		CarrierFedEx:   "fedex",
		CarrierDHL:     "dhl",
		CarrierAramex:  "aramex",
		CarrierOther:   "other",
	}
}

// CarrierFromString parses a carrier name ("ups", "fedex", ...).
func CarrierFromString(s string) (Carrier, error) {
	for carrier, name := range getCarrierStrings() {
		if carrier != CarrierUnknown && name == s {
			return carrier, nil
		}
	}
	return CarrierUnknown, errs.NewValueIsInvalidErrorWithCause("carrier",
		fmt.Errorf("%q is not a valid carrier", s))
}

// String returns the lowercase wire name of the carrier.
func (c Carrier) String() string {
	if str, ok := getCarrierStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the carrier is one of the defined values.
func (c Carrier) Validate() error {
	if c < CarrierUPS || c > CarrierOther {
		return errs.NewValueIsInvalidErrorWithCause("carrier",
			fmt.Errorf("%d is not a valid carrier", c))
	}
	return nil
}

// Domain errors for tracking timelines.
var (
	// ErrTrackingNumberIsRequired is returned when creating a timeline without a tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
	// ErrTimestampIsRequired is returned when a tracking event carries a zero timestamp.
	ErrTimestampIsRequired = errs.NewValueIsRequiredError("timestamp")
)

// TrackingEvent is one carrier-reported milestone: what happened, where, and
// when, as reported by the carrier (not by this system's clock).
type TrackingEvent struct {
	status      TrackingStatus
	description string
	location    string
	timestamp   time.Time
}

// NewTrackingEvent creates a TrackingEvent. Status and timestamp are
// required; description and location are carrier-supplied free text.
func NewTrackingEvent(status TrackingStatus, description, location string, timestamp time.Time) (TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if timestamp.IsZero() {
		return TrackingEvent{}, ErrTimestampIsRequired
	}

	return TrackingEvent{
		status:      status,
		description: strings.TrimSpace(description),
		location:    strings.TrimSpace(location),
		timestamp:   timestamp,
	}, nil
}

// Status returns the milestone the event reports.
func (e TrackingEvent) Status() TrackingStatus {
	return e.status
}

// Description returns the carrier's free-text description.
func (e TrackingEvent) Description() string {
	return e.description
}

// Location returns the carrier-reported location, possibly empty.
func (e TrackingEvent) Location() string {
	return e.location
}

// Timestamp returns the carrier-reported event time.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// isDuplicateOf reports whether two events describe the same carrier
// milestone: same status at the same instant.
func (e TrackingEvent) isDuplicateOf(other TrackingEvent) bool {
	return e.status == other.status && e.timestamp.Equal(other.timestamp)
}

// TrackingTimeline is the append-only carrier event log of one sub-order's
// shipment. Accepted events are ordered by non-decreasing timestamp; the
// latest accepted event defines CurrentStatus. Events at or below the
// watermark that would regress the visible status land in a side log for
// audit instead of being silently reordered or dropped.
//
// Example:
//
//	tl, _ := order.NewTrackingTimeline("1Z999AA10123456784", order.CarrierUPS, "")
//	event, _ := order.NewTrackingEvent(order.TrackingInTransit, "Departed facility", "Memphis, TN", time.Now())
//	accepted := tl.RecordEvent(event)
type TrackingTimeline struct {
	trackingNumber string
	carrier        Carrier
	trackingURL    string
	events         []TrackingEvent
	staleEvents    []TrackingEvent
}

// NewTrackingTimeline creates an empty timeline for a shipment. The tracking
// URL is optional.
func NewTrackingTimeline(trackingNumber string, carrier Carrier, trackingURL string) (*TrackingTimeline, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrTrackingNumberIsRequired
	}
	if err := carrier.Validate(); err != nil {
		return nil, err
	}

	return &TrackingTimeline{
		trackingNumber: trackingNumber,
		carrier:        carrier,
		trackingURL:    strings.TrimSpace(trackingURL),
	}, nil
}

// RestoreTrackingTimeline reconstructs a timeline from persistence, including
// its stale-event side log. Event ordering is trusted as persisted.
func RestoreTrackingTimeline(
	trackingNumber string,
	carrier Carrier,
	trackingURL string,
	events []TrackingEvent,
	staleEvents []TrackingEvent,
) (*TrackingTimeline, error) {
	timeline, err := NewTrackingTimeline(trackingNumber, carrier, trackingURL)
	if err != nil {
		return nil, err
	}

	var joined error
	for _, e := range append(append([]TrackingEvent{}, events...), staleEvents...) {
		joined = errors.Join(joined, e.status.Validate())
	}
	if joined != nil {
		return nil, joined
	}

	timeline.events = append(timeline.events, events...)
	timeline.staleEvents = append(timeline.staleEvents, staleEvents...)
	return timeline, nil
}

// RecordEvent appends a carrier event. It returns true when the event was
// accepted onto the timeline and false when it was diverted to the stale
// side log (below the watermark, or a duplicate of an already accepted
// event). Stale events never advance CurrentStatus. Duplicate delivery of
// the same event is therefore idempotent apart from the audit record.
func (t *TrackingTimeline) RecordEvent(event TrackingEvent) bool {
	if t.isStale(event) {
		t.staleEvents = append(t.staleEvents, event)
		return false
	}

	t.events = append(t.events, event)
	return true
}

// isStale reports whether the event must be diverted to the side log.
// Events strictly below the watermark regress the timeline; events at the
// watermark are accepted only if they are not a resend of an accepted event.
func (t *TrackingTimeline) isStale(event TrackingEvent) bool {
	if len(t.events) == 0 {
		return false
	}
	if event.timestamp.Before(t.Watermark()) {
		return true
	}
	for _, accepted := range t.events {
		if event.isDuplicateOf(accepted) {
			return true
		}
	}
	return false
}

// CurrentStatus returns the status of the latest accepted event, with ties
// on timestamp broken by insertion order. TrackingUnknown for an empty
// timeline.
func (t *TrackingTimeline) CurrentStatus() TrackingStatus {
	if len(t.events) == 0 {
		return TrackingUnknown
	}
	return t.events[len(t.events)-1].status
}

// Watermark returns the timestamp of the latest accepted event, or the zero
// time for an empty timeline.
func (t *TrackingTimeline) Watermark() time.Time {
	if len(t.events) == 0 {
		return time.Time{}
	}
	return t.events[len(t.events)-1].timestamp
}

// TrackingNumber returns the carrier's tracking number.
func (t *TrackingTimeline) TrackingNumber() string {
	return t.trackingNumber
}

// Carrier returns the shipping carrier.
func (t *TrackingTimeline) Carrier() Carrier {
	return t.carrier
}

// TrackingURL returns the optional carrier tracking page URL.
func (t *TrackingTimeline) TrackingURL() string {
	return t.trackingURL
}

// Events returns a copy of the accepted events in insertion order.
func (t *TrackingTimeline) Events() []TrackingEvent {
	return append([]TrackingEvent{}, t.events...)
}

// StaleEvents returns a copy of the stale-event side log in arrival order.
func (t *TrackingTimeline) StaleEvents() []TrackingEvent {
	return append([]TrackingEvent{}, t.staleEvents...)
}
