package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeMovie     = "Movie"
	TypeWebSeries = "Web Series"
	TypeShow      = "Show"
)

// ContentRecord is one row of the upload_content table: the identity of an
// uploaded title. Type-specific details live in the movie / web_series / show
// tables, linked through ContentID.
type ContentRecord struct {
	ID          string   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	ContentType string   `gorm:"type:text;not null;index" json:"content_type"`
	Genre       []string `gorm:"serializer:json" json:"genre"`
	ContentID   string   `gorm:"type:uuid;not null;index" json:"content_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContentRecord) TableName() string { return "upload_content" }

func (c *ContentRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
