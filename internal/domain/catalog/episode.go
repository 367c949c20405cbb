package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Episode struct {
	EpisodeID string `gorm:"type:uuid;primaryKey" json:"episode_id"`

	Title       string `gorm:"not null" json:"title"`
	Duration    int    `json:"duration"` // minutes
	Description string `json:"description"`

	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`

	Views int64 `gorm:"not null;default:0" json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Episode) TableName() string { return "episode" }

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.EpisodeID == "" {
		e.EpisodeID = uuid.NewString()
	}
	return nil
}
