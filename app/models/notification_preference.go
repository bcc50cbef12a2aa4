package models

import "time"

// NotificationPreference stores per-user, per-event reminder opt-ins. One row
// per (user, event); writes are upserts.
type NotificationPreference struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"uniqueIndex:idx_notify_user_event;not null" json:"user_id"`
	EventID           uint      `gorm:"uniqueIndex:idx_notify_user_event;not null" json:"event_id"`
	NotifyBeforeEvent bool      `gorm:"default:false" json:"notify_before_event"`
	NotifyRacepack    bool      `gorm:"default:false" json:"notify_racepack"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
