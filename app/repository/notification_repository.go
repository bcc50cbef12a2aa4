package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/runtix/runtix/app/models"
)

// notificationPreferenceRepository implements NotificationPreferenceRepository
type notificationPreferenceRepository struct {
	db *gorm.DB
}

// NewNotificationPreferenceRepository creates a new notification preference repository instance
func NewNotificationPreferenceRepository(db *gorm.DB) NotificationPreferenceRepository {
	return &notificationPreferenceRepository{db: db}
}

// Upsert inserts or updates the preference row for (user, event)
func (r *notificationPreferenceRepository) Upsert(pref *models.NotificationPreference) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "event_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"notify_before_event",
			"notify_racepack",
			"updated_at",
		}),
	}).Create(pref).Error
}

// DueReminders returns recipients who opted into a pre-event reminder for
// events taking place on the given date.
func (r *notificationPreferenceRepository) DueReminders(eventDate time.Time) ([]ReminderRecipient, error) {
	var rows []ReminderRecipient
	err := r.db.Model(&models.NotificationPreference{}).
		Select("users.email, events.name AS event_name, events.date").
		Joins("JOIN users ON users.id = notification_preferences.user_id").
		Joins("JOIN events ON events.id = notification_preferences.event_id").
		Where("events.date = ? AND notification_preferences.notify_before_event = ?", eventDate.Format("2006-01-02"), true).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
