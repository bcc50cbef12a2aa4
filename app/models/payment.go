package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Payment statuses. A payment starts pending and moves to exactly one of the
// terminal statuses via signature-verified gateway notifications.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSuccess   = "success"
	PaymentStatusExpired   = "expired"
	PaymentStatusCancelled = "cancelled"
)

// Payment is the local record correlating a registration with a gateway
// transaction. OrderID and Amount are immutable after creation; rows are
// never deleted (kept for audit).
type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderID        string    `gorm:"uniqueIndex;type:varchar(100);not null" json:"order_id" validate:"required,max=100"`
	RegistrationID uint      `gorm:"index;not null" json:"registration_id" validate:"required"`
	Amount         float64   `gorm:"type:decimal(12,2);not null" json:"amount" validate:"gt=0"`
	Status         string    `gorm:"type:varchar(20);default:'pending'" json:"status" validate:"oneof=pending success expired cancelled"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// IsTerminalPaymentStatus reports whether status permits no further
// transitions.
func IsTerminalPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusSuccess, PaymentStatusExpired, PaymentStatusCancelled:
		return true
	}
	return false
}
