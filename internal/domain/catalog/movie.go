package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Movie struct {
	ContentID string `gorm:"type:uuid;primaryKey" json:"content_id"`

	Description string  `json:"description"`
	ReleaseYear int     `json:"release_year"`
	RatingType  string  `json:"rating_type"`
	Rating      float64 `json:"rating"`
	Duration    int     `json:"duration"` // minutes

	Director    []string `gorm:"serializer:json" json:"director"`
	Writer      []string `gorm:"serializer:json" json:"writer"`
	CastMembers []string `gorm:"serializer:json" json:"cast_members"`

	ThumbnailURL string `json:"thumbnail_url"`
	TrailerURL   string `json:"trailer_url"`
	VideoURL     string `json:"video_url"`

	FeatureIn []string `gorm:"serializer:json" json:"feature_in"`

	Views int64 `gorm:"not null;default:0" json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string { return "movie" }

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ContentID == "" {
		m.ContentID = uuid.NewString()
	}
	return nil
}
