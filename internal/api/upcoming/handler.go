package upcoming

import (
	"errors"
	"net/http"
	"time"

	"streaming-app/database"
	"streaming-app/internal/domain/upcoming"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/upcoming
// ------------------------------
func ListUpcoming(c *gin.Context) {
	var items []upcoming.UpcomingContent
	err := database.DB.
		Order("content_order ASC").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load upcoming content"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ------------------------------
// POST /api/upcoming
// ------------------------------
func CreateUpcoming(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required. Please fill in all the form fields."})
		return
	}

	releaseDate, err := req.validate(time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var created upcoming.UpcomingContent
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var live int64
		if err := tx.Model(&upcoming.UpcomingContent{}).Count(&live).Error; err != nil {
			return err
		}
		if live >= upcoming.MaxAnnouncements {
			return errCapacity
		}

		// free the requested slot before our own insert
		if err := reserveSlot(newSlotStore(tx), req.ContentOrder, ""); err != nil {
			return err
		}

		created = upcoming.UpcomingContent{
			Title:        req.Title,
			ContentType:  req.ContentType,
			ReleaseDate:  releaseDate,
			Description:  req.Description,
			ThumbnailURL: req.ThumbnailURL,
			TrailerURL:   req.TrailerURL,
			Genre:        req.Genre,
			CastMembers:  req.CastMembers,
			Directors:    req.Directors,
			Writers:      req.Writers,
			RatingType:   req.RatingType,
			ContentOrder: req.ContentOrder,
		}
		return tx.Create(&created).Error
	})

	if err != nil {
		respondSlotError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ------------------------------
// PUT /api/upcoming/:id
// ------------------------------
func UpdateUpcoming(c *gin.Context) {
	id := c.Param("id")

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required. Please fill in all the form fields."})
		return
	}

	releaseDate, err := req.validate(time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated upcoming.UpcomingContent
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return err
		}

		// exclude the record being updated from conflict resolution
		if err := reserveSlot(newSlotStore(tx), req.ContentOrder, id); err != nil {
			return err
		}

		updated.Title = req.Title
		updated.ContentType = req.ContentType
		updated.ReleaseDate = releaseDate
		updated.Description = req.Description
		updated.ThumbnailURL = req.ThumbnailURL
		updated.TrailerURL = req.TrailerURL
		updated.Genre = req.Genre
		updated.CastMembers = req.CastMembers
		updated.Directors = req.Directors
		updated.Writers = req.Writers
		updated.RatingType = req.RatingType
		updated.ContentOrder = req.ContentOrder
		return tx.Save(&updated).Error
	})

	if err != nil {
		respondSlotError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ------------------------------
// DELETE /api/upcoming/:id  (gaps in content_order are left as-is)
// ------------------------------
func DeleteUpcoming(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&upcoming.UpcomingContent{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete upcoming content"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Upcoming content not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /api/upcoming/cleanup  -> remove announcements past their release date
// ------------------------------
func CleanupExpired(c *gin.Context) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	res := database.DB.
		Where("release_date < ?", today).
		Delete(&upcoming.UpcomingContent{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean up expired announcements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_count": res.RowsAffected})
}

var errCapacity = errors.New("Maximum of 20 announcements allowed. Please delete some existing announcements first.")

func respondSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errCapacity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Upcoming content not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save upcoming content", "details": err.Error()})
	}
}
