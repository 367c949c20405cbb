package upcoming

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxAnnouncements caps the live announcement list; ContentOrder is unique
// in [1, MaxAnnouncements] across live rows.
const MaxAnnouncements = 20

type UpcomingContent struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string    `gorm:"not null" json:"title"`
	ContentType string    `gorm:"type:text;not null" json:"content_type"`
	ReleaseDate time.Time `gorm:"not null" json:"release_date"`
	Description string    `json:"description"`

	ThumbnailURL string `json:"thumbnail_url"`
	TrailerURL   string `json:"trailer_url"`

	Genre       []string `gorm:"serializer:json" json:"genre"`
	CastMembers []string `gorm:"serializer:json" json:"cast_members"`
	Directors   []string `gorm:"serializer:json" json:"directors"`
	Writers     []string `gorm:"serializer:json" json:"writers"`

	RatingType   string `json:"rating_type"`
	ContentOrder int    `gorm:"not null;index" json:"content_order"`

	CreatedAt time.Time `json:"created_at"`
}

func (UpcomingContent) TableName() string { return "upcoming_content" }

func (u *UpcomingContent) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
