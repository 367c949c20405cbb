package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Show mirrors Movie minus duration/video_url; episodes hang directly off the
// show without a season level.
type Show struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Description string  `json:"description"`
	ReleaseYear int     `json:"release_year"`
	RatingType  string  `json:"rating_type"`
	Rating      float64 `json:"rating"`

	Directors   []string `gorm:"serializer:json" json:"directors"`
	Writers     []string `gorm:"serializer:json" json:"writers"`
	CastMembers []string `gorm:"serializer:json" json:"cast_members"`

	ThumbnailURL string `json:"thumbnail_url"`
	TrailerURL   string `json:"trailer_url"`

	FeatureIn     []string `gorm:"serializer:json" json:"feature_in"`
	EpisodeIDList []string `gorm:"serializer:json" json:"episode_id_list"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Show) TableName() string { return "show" }

func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
