package payment

import (
	"errors"

	"github.com/runtix/runtix/app/models"
)

var (
	// ErrDuplicateOrder is returned when a payment row already exists for the
	// order id.
	ErrDuplicateOrder = errors.New("payment: duplicate order id")
	// ErrOrderNotFound is returned when a notification references an order id
	// without a local payment row.
	ErrOrderNotFound = errors.New("payment: order not found")
	// ErrInvalidSignature is returned when a notification fails signature
	// verification. Indicates tampering or a misconfigured server key; never
	// retried locally.
	ErrInvalidSignature = errors.New("payment: invalid signature")
	// ErrGatewayUnavailable wraps transaction-creation failures from the
	// upstream gateway.
	ErrGatewayUnavailable = errors.New("payment: gateway unavailable")
)

// MapTransactionStatus maps a Midtrans transaction_status value to the local
// payment status. ok is false for status values this subsystem does not track
// (deny, refund, ...); those notifications are acknowledged without a
// transition.
func MapTransactionStatus(transactionStatus string) (string, bool) {
	switch transactionStatus {
	case "settlement":
		return models.PaymentStatusSuccess, true
	case "pending":
		return models.PaymentStatusPending, true
	case "expire":
		return models.PaymentStatusExpired, true
	case "cancel":
		return models.PaymentStatusCancelled, true
	}
	return "", false
}
