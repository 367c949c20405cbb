package content

import (
	"net/http"

	"streaming-app/database"
	"streaming-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func isValidContentType(t string) bool {
	return t == catalog.TypeMovie || t == catalog.TypeWebSeries || t == catalog.TypeShow
}

// ------------------------------
// POST /api/content
// ------------------------------
func CreateContent(c *gin.Context) {
	var input ContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !isValidContentType(input.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type"})
		return
	}

	var rec catalog.ContentRecord
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		detailID, err := createDetail(tx, &input)
		if err != nil {
			return err
		}

		rec = catalog.ContentRecord{
			Title:       input.Title,
			ContentType: input.ContentType,
			Genre:       input.Genre,
			ContentID:   detailID,
		}
		return tx.Create(&rec).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": rec.ID})
}

// ------------------------------
// PUT /api/content/:id
// ------------------------------
func UpdateContent(c *gin.Context) {
	id := c.Param("id")

	var input ContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !isValidContentType(input.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var rec catalog.ContentRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			return err
		}

		if rec.ContentType != input.ContentType {
			// type changed: rebuild the detail tree under the same record
			if err := deleteDetailTree(tx, &rec); err != nil {
				return err
			}
			detailID, err := createDetail(tx, &input)
			if err != nil {
				return err
			}
			rec.Title = input.Title
			rec.Genre = input.Genre
			rec.ContentType = input.ContentType
			rec.ContentID = detailID
			return tx.Save(&rec).Error
		}

		rec.Title = input.Title
		rec.Genre = input.Genre
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		return updateDetail(tx, &rec, &input)
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// updateDetail applies a same-type update. Shows and web series replace
// their episode/season children wholesale and relink the id lists; movies
// update in place.
func updateDetail(tx *gorm.DB, rec *catalog.ContentRecord, input *ContentInput) error {
	switch rec.ContentType {
	case catalog.TypeMovie:
		var m catalog.Movie
		if err := tx.First(&m, "content_id = ?", rec.ContentID).Error; err != nil {
			return err
		}
		m.Description = input.Description
		m.ReleaseYear = input.ReleaseYear
		m.RatingType = input.RatingType
		m.Rating = input.Rating
		m.Duration = input.Duration
		m.Director = input.Directors
		m.Writer = input.Writers
		m.CastMembers = input.CastMembers
		m.ThumbnailURL = input.ThumbnailURL
		m.TrailerURL = input.TrailerURL
		m.VideoURL = input.VideoURL
		m.FeatureIn = input.FeatureIn
		return tx.Save(&m).Error

	case catalog.TypeWebSeries:
		var ws catalog.WebSeries
		if err := tx.First(&ws, "content_id = ?", rec.ContentID).Error; err != nil {
			return err
		}
		if err := deleteSeasons(tx, ws.SeasonIDList); err != nil {
			return err
		}
		seasonIDs, err := createSeasons(tx, input.Seasons)
		if err != nil {
			return err
		}
		ws.SeasonIDList = seasonIDs
		return tx.Save(&ws).Error

	case catalog.TypeShow:
		var s catalog.Show
		if err := tx.First(&s, "id = ?", rec.ContentID).Error; err != nil {
			return err
		}
		if err := deleteEpisodes(tx, s.EpisodeIDList); err != nil {
			return err
		}
		episodeIDs, err := createEpisodes(tx, input.Episodes)
		if err != nil {
			return err
		}
		s.Description = input.Description
		s.ReleaseYear = input.ReleaseYear
		s.RatingType = input.RatingType
		s.Rating = input.Rating
		s.Directors = input.Directors
		s.Writers = input.Writers
		s.CastMembers = input.CastMembers
		s.ThumbnailURL = input.ThumbnailURL
		s.TrailerURL = input.TrailerURL
		s.FeatureIn = input.FeatureIn
		s.EpisodeIDList = episodeIDs
		return tx.Save(&s).Error
	}
	return nil
}

// ------------------------------
// DELETE /api/content/:id
// ------------------------------
func DeleteContent(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var rec catalog.ContentRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		if err := deleteDetailTree(tx, &rec); err != nil {
			return err
		}
		return tx.Delete(&catalog.ContentRecord{}, "id = ?", rec.ID).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
