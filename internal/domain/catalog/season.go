package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Season struct {
	SeasonID string `gorm:"type:uuid;primaryKey" json:"season_id"`

	SeasonTitle       string  `json:"season_title"`
	SeasonDescription string  `json:"season_description"`
	ReleaseYear       int     `json:"release_year"`
	RatingType        string  `json:"rating_type"`
	Rating            float64 `json:"rating"`

	Director    []string `gorm:"serializer:json" json:"director"`
	Writer      []string `gorm:"serializer:json" json:"writer"`
	CastMembers []string `gorm:"serializer:json" json:"cast_members"`

	ThumbnailURL string `json:"thumbnail_url"`
	TrailerURL   string `json:"trailer_url"`

	FeatureIn     []string `gorm:"serializer:json" json:"feature_in"`
	EpisodeIDList []string `gorm:"serializer:json" json:"episode_id_list"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Season) TableName() string { return "season" }

func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.SeasonID == "" {
		s.SeasonID = uuid.NewString()
	}
	return nil
}
