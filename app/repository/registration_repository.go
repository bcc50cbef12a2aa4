package repository

import (
	"gorm.io/gorm"

	"github.com/runtix/runtix/app/models"
)

// registrationRepository implements the RegistrationRepository interface
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create creates a new registration in the database
func (r *registrationRepository) Create(reg *models.Registration) error {
	return r.db.Create(reg).Error
}

// GetByIDForUser retrieves a registration scoped to its owner
func (r *registrationRepository) GetByIDForUser(id, userID uint) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// HistoryByUser returns a user's registrations joined with their events
func (r *registrationRepository) HistoryByUser(userID uint) ([]models.RegistrationWithEvent, error) {
	var rows []models.RegistrationWithEvent
	err := r.db.Model(&models.Registration{}).
		Select("events.name AS event_name, events.date, events.location, registrations.tshirt_size, registrations.created_at").
		Joins("JOIN events ON registrations.event_id = events.id").
		Where("registrations.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// IncrementDownloadCount bumps the certificate download counter
func (r *registrationRepository) IncrementDownloadCount(id uint) error {
	return r.db.Model(&models.Registration{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}
