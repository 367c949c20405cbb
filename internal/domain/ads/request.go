package ads

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinBudget = 5000
	MaxBudget = 100000000
)

type AdvertisementRequest struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email       string  `gorm:"not null" json:"email"`
	Description string  `gorm:"not null" json:"description"`
	Budget      float64 `gorm:"not null" json:"budget"`
	UserIP      string  `gorm:"not null;index" json:"user_ip"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdvertisementRequest) TableName() string { return "advertisement_requests" }

func (r *AdvertisementRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
