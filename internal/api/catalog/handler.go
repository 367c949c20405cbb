package catalog

import (
	"net/http"

	"streaming-app/database"
	"streaming-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/content  -> grouped catalog listing
// ------------------------------
func GetAllContent(c *gin.Context) {
	records, err := loadOrderedContent(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	all := AggregateAll(records, NewResolver(database.DB))

	movies := make([]DisplayRecord, 0)
	webSeries := make([]DisplayRecord, 0)
	shows := make([]DisplayRecord, 0)
	for _, dr := range all {
		switch dr.Kind {
		case KindMovie:
			movies = append(movies, dr)
		case KindSeason:
			webSeries = append(webSeries, dr)
		case KindShow:
			shows = append(shows, dr)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"movies":    movies,
		"webSeries": webSeries,
		"shows":     shows,
	})
}

// ------------------------------
// GET /api/content/feature/:tag
// ------------------------------
func GetContentByFeature(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feature tag is required"})
		return
	}

	records, err := loadOrderedContent(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, FilterByFeature(records, NewResolver(database.DB), tag))
}

// ------------------------------
// GET /api/content/genre/:genre
// ------------------------------
func GetContentByGenre(c *gin.Context) {
	genre := c.Param("genre")
	if genre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Genre is required"})
		return
	}

	records, err := loadOrderedContent(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, FilterByGenre(records, NewResolver(database.DB), genre))
}

// ------------------------------
// GET /api/content/:id  (accepts composite season ids)
// ------------------------------
func GetContentByID(c *gin.Context) {
	baseID, seasonNumber := ParseDisplayID(c.Param("id"))

	var rec catalog.ContentRecord
	err := database.DB.First(&rec, "id = ?", baseID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	all := AggregateAll([]catalog.ContentRecord{rec}, NewResolver(database.DB))
	for _, dr := range all {
		if seasonNumber == 0 || dr.SeasonNumber == seasonNumber {
			c.JSON(http.StatusOK, dr)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
}
