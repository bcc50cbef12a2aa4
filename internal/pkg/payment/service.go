package payment

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/runtix/runtix/app/models"
)

// Service orchestrates payment creation and webhook reconciliation.
type Service struct {
	repo      Repository
	gateway   Gateway
	serverKey string
}

// NewService creates a payment service from injected collaborators.
func NewService(repo Repository, gateway Gateway, serverKey string) *Service {
	return &Service{repo: repo, gateway: gateway, serverKey: serverKey}
}

// NewServiceFromDB creates a payment service from a GORM DB handle and the
// env-configured Midtrans gateway.
func NewServiceFromDB(db *gorm.DB, serverKey string) *Service {
	return NewService(NewRepository(db), NewMidtransGatewayFromEnv(), serverKey)
}

// CreatePaymentInput carries the fields of a payment-creation request.
type CreatePaymentInput struct {
	RegistrationID uint
	OrderID        string
	GrossAmount    float64
	CustomerName   string
	CustomerEmail  string
}

// CreatePayment opens a transaction with the gateway and records a pending
// payment row for the order. The row is only written after the gateway
// accepted the transaction, matching the gateway's guarantee that it will not
// notify before creation completed on its side.
func (s *Service) CreatePayment(ctx context.Context, in CreatePaymentInput) (*Session, error) {
	session, err := s.gateway.CreateTransaction(ctx, in.OrderID, in.GrossAmount, in.CustomerName, in.CustomerEmail)
	if err != nil {
		log.Printf("Failed to create gateway transaction for order %s: %v", in.OrderID, err)
		return nil, err
	}

	p := &models.Payment{
		OrderID:        in.OrderID,
		RegistrationID: in.RegistrationID,
		Amount:         in.GrossAmount,
		Status:         models.PaymentStatusPending,
	}
	if err := s.repo.Create(p); err != nil {
		log.Printf("Failed to save payment for order %s: %v", in.OrderID, err)
		return nil, err
	}

	log.Printf("Transaction created for order %s (registration %d)", in.OrderID, in.RegistrationID)
	return session, nil
}

// Notification is the inbound webhook payload from the gateway.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       Amount `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
}

// ProcessNotification verifies the webhook signature and applies the mapped
// status transition. Unknown transaction_status values are acknowledged
// without a transition so the gateway stops retrying. Signature mismatch is
// ErrInvalidSignature; a notification for an order that was never created is
// ErrOrderNotFound.
func (s *Service) ProcessNotification(ctx context.Context, n Notification) error {
	_ = ctx
	log.Printf("Notification received for order %s (status_code=%s, transaction_status=%s)",
		n.OrderID, n.StatusCode, n.TransactionStatus)

	if !VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount.String(), n.SignatureKey, s.serverKey) {
		log.Printf("Invalid signature for order %s", n.OrderID)
		return ErrInvalidSignature
	}

	status, ok := MapTransactionStatus(n.TransactionStatus)
	if !ok {
		log.Printf("Ignoring unhandled transaction status %q for order %s", n.TransactionStatus, n.OrderID)
		return nil
	}

	updated, err := s.repo.UpdateStatus(n.OrderID, status)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Printf("Notification for unknown order %s", n.OrderID)
		} else {
			log.Printf("Failed to update payment status for order %s: %v", n.OrderID, err)
		}
		return err
	}
	if !updated {
		log.Printf("Stale notification for order %s ignored (status already terminal)", n.OrderID)
		return nil
	}

	log.Printf("Notification processed for order %s, status set to %s", n.OrderID, status)
	return nil
}
