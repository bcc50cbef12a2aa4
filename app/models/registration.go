package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Registration struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"index;not null" json:"user_id" validate:"required"`
	EventID        uint           `gorm:"index;not null" json:"event_id" validate:"required"`
	TshirtSize     string         `gorm:"type:varchar(5)" json:"tshirt_size" validate:"required,max=5"`
	CertificateURL string         `gorm:"type:varchar(255);default:null" json:"certificate_url"`
	DownloadCount  uint           `gorm:"default:0" json:"download_count"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Registration) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// RegistrationWithEvent is the joined row returned for a user's event history.
type RegistrationWithEvent struct {
	EventName  string    `json:"event_name"`
	Date       time.Time `json:"date"`
	Location   string    `json:"location"`
	TshirtSize string    `json:"tshirt_size"`
	CreatedAt  time.Time `json:"created_at"`
}
