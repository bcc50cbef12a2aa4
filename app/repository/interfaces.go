package repository

import (
	"time"

	"github.com/runtix/runtix/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	// SetVerified flips the organizer verification flag; reports whether a
	// user row matched.
	SetVerified(id uint, verified bool) (bool, error)
}

// EventFilter narrows the public event listing.
type EventFilter struct {
	City     string
	Category string
	Date     string // YYYY-MM-DD
}

// EventRepository defines the interface for event-related database operations
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	// List returns a filtered page of events plus the total count matching
	// the filter.
	List(filter EventFilter, offset, limit int) ([]models.Event, int64, error)
	GetByCreator(userID uint) ([]models.Event, error)
	// UpdatePartial updates only the provided columns (COALESCE semantics).
	UpdatePartial(id uint, fields map[string]interface{}) error
	DistinctLocations() ([]string, error)
}

// RegistrationRepository defines the interface for event registrations
type RegistrationRepository interface {
	Create(reg *models.Registration) error
	// GetByIDForUser scopes the lookup to the owning user so one runner
	// cannot read another's registration.
	GetByIDForUser(id, userID uint) (*models.Registration, error)
	HistoryByUser(userID uint) ([]models.RegistrationWithEvent, error)
	IncrementDownloadCount(id uint) error
}

// RatingRepository persists event ratings
type RatingRepository interface {
	Create(rating *models.Rating) error
}

// ReminderRecipient is a runner to notify about an upcoming event.
type ReminderRecipient struct {
	Email     string
	EventName string
	Date      time.Time
}

// NotificationPreferenceRepository manages reminder opt-ins
type NotificationPreferenceRepository interface {
	Upsert(pref *models.NotificationPreference) error
	// DueReminders returns recipients who opted into a pre-event reminder for
	// events on the given date.
	DueReminders(eventDate time.Time) ([]ReminderRecipient, error)
}
