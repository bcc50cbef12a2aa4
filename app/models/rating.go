package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id" validate:"required"`
	EventID   uint      `gorm:"index;not null" json:"event_id" validate:"required"`
	Rating    int       `gorm:"not null" json:"rating" validate:"min=1,max=5"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Rating) Validate() error {
	v := validator.New()

	return v.Struct(r)
}
