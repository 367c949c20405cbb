package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebSeries holds only the ordered season list; per-season metadata lives in
// the season table. SeasonIDList order is the season numbering (1-indexed).
type WebSeries struct {
	ContentID    string   `gorm:"type:uuid;primaryKey" json:"content_id"`
	SeasonIDList []string `gorm:"serializer:json" json:"season_id_list"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WebSeries) TableName() string { return "web_series" }

func (w *WebSeries) BeforeCreate(tx *gorm.DB) error {
	if w.ContentID == "" {
		w.ContentID = uuid.NewString()
	}
	return nil
}
