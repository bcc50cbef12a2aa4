package repository

import (
	"gorm.io/gorm"

	"github.com/runtix/runtix/app/models"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event in the database
func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by its ID
func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns a filtered, paginated slice of events plus the total count
// matching the filter (for the pagination envelope).
func (r *eventRepository) List(filter EventFilter, offset, limit int) ([]models.Event, int64, error) {
	query := r.db.Model(&models.Event{})
	if filter.City != "" {
		query = query.Where("location = ?", filter.City)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	if err := query.Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// GetByCreator returns all events created by the given user
func (r *eventRepository) GetByCreator(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("created_by = ?", userID).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// UpdatePartial updates only the provided columns of an event
func (r *eventRepository) UpdatePartial(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Event{}).Where("id = ?", id).Updates(fields).Error
}

// DistinctLocations returns the distinct event locations (cities)
func (r *eventRepository) DistinctLocations() ([]string, error) {
	var locations []string
	err := r.db.Model(&models.Event{}).Distinct("location").Order("location").Pluck("location", &locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
