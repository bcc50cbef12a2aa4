package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CATEGORY_5K       = "5K"
	CATEGORY_10K      = "10K"
	CATEGORY_MARATHON = "Marathon"
)

type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(200)" json:"name" validate:"required,max=200"`
	Location    string         `gorm:"type:varchar(150);index" json:"location" validate:"required,max=150"`
	MapLocation string         `gorm:"type:varchar(255)" json:"map_location" validate:"required,max=255"`
	RouteMapURL string         `gorm:"type:varchar(255);default:null" json:"route_map_url" validate:"omitempty,url,max=255"`
	Category    string         `gorm:"type:varchar(50);index" json:"category" validate:"oneof=5K 10K Marathon"`
	Date        time.Time      `gorm:"type:date;index" json:"date" validate:"required"`
	Description string         `gorm:"type:text" json:"description"`
	Fee         float64        `gorm:"type:decimal(12,2)" json:"fee" validate:"gte=0"`
	CreatedBy   uint           `gorm:"index" json:"created_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *Event) Validate() error {
	v := validator.New()

	return v.Struct(e)
}
