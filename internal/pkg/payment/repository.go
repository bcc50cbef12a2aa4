package payment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/runtix/runtix/app/models"
)

// Repository provides the DB operations used by the payment service. All
// mutations are single-row, auto-committing statements.
type Repository interface {
	Create(p *models.Payment) error
	GetByOrderID(orderID string) (*models.Payment, error)
	// UpdateStatus applies a status transition for the order. It reports
	// whether a row changed; a stale or repeated notification that matches no
	// transition is (false, nil), a missing order is ErrOrderNotFound.
	UpdateStatus(orderID, status string) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(p *models.Payment) error {
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (r *gormRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateStatus is a single conditional UPDATE: a transition is applied only
// from pending, or when it repeats the current status (idempotent gateway
// retries). A terminal status is sticky: a late conflicting notification
// matches no row and is a no-op.
func (r *gormRepository) UpdateStatus(orderID, status string) (bool, error) {
	res := r.db.Model(&models.Payment{}).
		Where("order_id = ? AND (status = ? OR status = ?)", orderID, models.PaymentStatusPending, status).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// No transition happened: distinguish a missing order from a sticky
	// terminal state.
	var count int64
	if err := r.db.Model(&models.Payment{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, ErrOrderNotFound
	}
	return false, nil
}
