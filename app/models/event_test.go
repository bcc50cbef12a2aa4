package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		Name:        "Jakarta City Marathon",
		Location:    "Jakarta",
		MapLocation: "https://maps.example.com/jakarta-marathon",
		Category:    CATEGORY_MARATHON,
		Date:        time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Fee:         350000,
	}
}

func TestEventValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validEvent().Validate())

	t.Run("rejects unknown category", func(t *testing.T) {
		e := validEvent()
		e.Category = "Half Marathon"
		assert.Error(t, e.Validate())
	})

	t.Run("rejects negative fee", func(t *testing.T) {
		e := validEvent()
		e.Fee = -1
		assert.Error(t, e.Validate())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		e := validEvent()
		e.Name = ""
		assert.Error(t, e.Validate())
	})

	t.Run("rejects malformed route map url", func(t *testing.T) {
		e := validEvent()
		e.RouteMapURL = "not a url"
		assert.Error(t, e.Validate())
	})
}

func TestPaymentValidate(t *testing.T) {
	t.Parallel()

	p := &Payment{
		OrderID:        "ORD123",
		RegistrationID: 1,
		Amount:         50000,
		Status:         PaymentStatusPending,
	}
	require.NoError(t, p.Validate())

	t.Run("rejects unknown status", func(t *testing.T) {
		bad := *p
		bad.Status = "refunded"
		assert.Error(t, bad.Validate())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		bad := *p
		bad.Amount = 0
		assert.Error(t, bad.Validate())
	})
}

func TestIsTerminalPaymentStatus(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminalPaymentStatus(PaymentStatusPending))
	assert.True(t, IsTerminalPaymentStatus(PaymentStatusSuccess))
	assert.True(t, IsTerminalPaymentStatus(PaymentStatusExpired))
	assert.True(t, IsTerminalPaymentStatus(PaymentStatusCancelled))
	assert.False(t, IsTerminalPaymentStatus("refunded"))
}
