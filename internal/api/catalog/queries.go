package catalog

import (
	"streaming-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// orderedContentQuery returns upload_content newest-first, the order the
// catalog pages expect before aggregation.
func orderedContentQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.ContentRecord{}).
		Order("updated_at DESC").
		Order("created_at DESC")
}

func loadOrderedContent(db *gorm.DB) ([]catalog.ContentRecord, error) {
	var records []catalog.ContentRecord
	if err := orderedContentQuery(db).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
