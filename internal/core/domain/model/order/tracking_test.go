package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingTimeline(t *testing.T) {
	t.Run("should create an empty timeline", func(t *testing.T) {
		timeline, err := order.NewTrackingTimeline("1Z999AA10123456784", order.CarrierUPS, "https://ups.example/track")

		require.NoError(t, err)
		assert.Equal(t, "1Z999AA10123456784", timeline.TrackingNumber())
		assert.Equal(t, order.CarrierUPS, timeline.Carrier())
		assert.Equal(t, order.TrackingUnknown, timeline.CurrentStatus())
		assert.True(t, timeline.Watermark().IsZero())
		assert.Empty(t, timeline.Events())
	})

	t.Run("should trim and require the tracking number", func(t *testing.T) {
		_, err := order.NewTrackingTimeline("   ", order.CarrierUPS, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTrackingNumberIsRequired)
	})

	t.Run("should reject an unknown carrier", func(t *testing.T) {
		_, err := order.NewTrackingTimeline("1Z999AA10123456784", order.CarrierUnknown, "")

		require.Error(t, err)
	})
}

func TestTrackingTimelineRecordEvent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTimeline := func(t *testing.T) *order.TrackingTimeline {
		t.Helper()
		timeline, err := order.NewTrackingTimeline("1Z999AA10123456784", order.CarrierFedEx, "")
		require.NoError(t, err)
		return timeline
	}

	newEvent := func(t *testing.T, status order.TrackingStatus, at time.Time, description string) order.TrackingEvent {
		t.Helper()
		event, err := order.NewTrackingEvent(status, description, "Memphis, TN", at)
		require.NoError(t, err)
		return event
	}

	t.Run("accepts events at or above the watermark", func(t *testing.T) {
		timeline := newTimeline(t)

		assert.True(t, timeline.RecordEvent(newEvent(t, order.TrackingShipped, base, "picked up")))
		assert.True(t, timeline.RecordEvent(newEvent(t, order.TrackingInTransit, base.Add(time.Hour), "departed")))

		assert.Equal(t, order.TrackingInTransit, timeline.CurrentStatus())
		assert.Equal(t, base.Add(time.Hour), timeline.Watermark())
		assert.Len(t, timeline.Events(), 2)
		assert.Empty(t, timeline.StaleEvents())
	})

	t.Run("diverts events below the watermark to the side log", func(t *testing.T) {
		timeline := newTimeline(t)
		require.True(t, timeline.RecordEvent(newEvent(t, order.TrackingInTransit, base, "departed")))

		accepted := timeline.RecordEvent(newEvent(t, order.TrackingShipped, base.Add(-time.Hour), "late scan"))

		assert.False(t, accepted)
		assert.Equal(t, order.TrackingInTransit, timeline.CurrentStatus())
		assert.Equal(t, base, timeline.Watermark())
		assert.Len(t, timeline.StaleEvents(), 1)
	})

	t.Run("duplicate resends are stale", func(t *testing.T) {
		timeline := newTimeline(t)
		require.True(t, timeline.RecordEvent(newEvent(t, order.TrackingInTransit, base, "departed")))

		accepted := timeline.RecordEvent(newEvent(t, order.TrackingInTransit, base, "departed"))

		assert.False(t, accepted)
		assert.Len(t, timeline.Events(), 1)
		assert.Len(t, timeline.StaleEvents(), 1)
	})

	t.Run("distinct event at the watermark timestamp is accepted", func(t *testing.T) {
		timeline := newTimeline(t)
		require.True(t, timeline.RecordEvent(newEvent(t, order.TrackingInTransit, base, "departed")))

		accepted := timeline.RecordEvent(newEvent(t, order.TrackingOutForDelivery, base, "on the truck"))

		assert.True(t, accepted)
		assert.Equal(t, order.TrackingOutForDelivery, timeline.CurrentStatus())
	})

	t.Run("ties on timestamp resolve by insertion order", func(t *testing.T) {
		timeline := newTimeline(t)

		require.True(t, timeline.RecordEvent(newEvent(t, order.TrackingInTransit, base, "scan one")))
		require.True(t, timeline.RecordEvent(newEvent(t, order.TrackingFailedDelivery, base, "held at customs")))

		assert.Equal(t, order.TrackingFailedDelivery, timeline.CurrentStatus())
	})
}

func TestRestoreTrackingTimeline(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("restores accepted and stale events separately", func(t *testing.T) {
		accepted, err := order.NewTrackingEvent(order.TrackingInTransit, "departed", "", base)
		require.NoError(t, err)
		stale, err := order.NewTrackingEvent(order.TrackingShipped, "late scan", "", base.Add(-time.Hour))
		require.NoError(t, err)

		timeline, err := order.RestoreTrackingTimeline(
			"1Z999AA10123456784", order.CarrierDHL, "",
			[]order.TrackingEvent{accepted}, []order.TrackingEvent{stale},
		)

		require.NoError(t, err)
		assert.Len(t, timeline.Events(), 1)
		assert.Len(t, timeline.StaleEvents(), 1)
		assert.Equal(t, order.TrackingInTransit, timeline.CurrentStatus())
		assert.Equal(t, base, timeline.Watermark())
	})
}

func TestCarrierFromString(t *testing.T) {
	t.Run("should parse known carriers", func(t *testing.T) {
		for name, expected := range map[string]order.Carrier{
			"ups":    order.CarrierUPS,
			"fedex":  order.CarrierFedEx,
			"dhl":    order.CarrierDHL,
			"aramex": order.CarrierAramex,
			"other":  order.CarrierOther,
		} {
			carrier, err := order.CarrierFromString(name)

			require.NoError(t, err, name)
			assert.Equal(t, expected, carrier)
		}
	})

	t.Run("should fail for unknown carriers", func(t *testing.T) {
		_, err := order.CarrierFromString("pigeon")

		require.Error(t, err)
	})
}
