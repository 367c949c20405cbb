package views

import (
	"net/http"

	"streaming-app/database"
	"streaming-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// POST /api/views/movie/:contentId
// ------------------------------
func IncrementMovieViews(c *gin.Context) {
	contentID := c.Param("contentId")
	if contentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content ID is required"})
		return
	}

	res := database.DB.Model(&catalog.Movie{}).
		Where("content_id = ?", contentID).
		Update("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment movie views", "details": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Movie view incremented"})
}

// ------------------------------
// POST /api/views/episode/:episodeId
// POST /api/views/show/:episodeId  (show playback increments the watched episode)
// ------------------------------
func IncrementEpisodeViews(c *gin.Context) {
	episodeID := c.Param("episodeId")
	if episodeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Episode ID is required and cannot be empty"})
		return
	}

	res := database.DB.Model(&catalog.Episode{}).
		Where("episode_id = ?", episodeID).
		Update("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment episode views", "details": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Episode view incremented", "episodeId": episodeID})
}

// ------------------------------
// GET /api/views/:contentType/:contentId
// ------------------------------
func GetViews(c *gin.Context) {
	contentType := c.Param("contentType")
	contentID := c.Param("contentId")

	if contentType == "" || contentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content ID and type are required"})
		return
	}

	var views int64
	var err error

	switch contentType {
	case "movie":
		views, err = movieViews(contentID)
	case "episode":
		views, err = episodeViews(contentID)
	case "season":
		views, err = seasonViews(contentID)
	case "show":
		views, err = showViews(contentID)
	case "web-series":
		views, err = webSeriesViews(contentID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type"})
		return
	}

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get views", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"views": views})
}

func movieViews(contentID string) (int64, error) {
	var m catalog.Movie
	if err := database.DB.Select("views").First(&m, "content_id = ?", contentID).Error; err != nil {
		return 0, err
	}
	return m.Views, nil
}

func episodeViews(episodeID string) (int64, error) {
	var e catalog.Episode
	if err := database.DB.Select("views").First(&e, "episode_id = ?", episodeID).Error; err != nil {
		return 0, err
	}
	return e.Views, nil
}

func sumEpisodeViews(episodeIDs []string) (int64, error) {
	if len(episodeIDs) == 0 {
		return 0, nil
	}
	var total int64
	err := database.DB.Model(&catalog.Episode{}).
		Where("episode_id IN ?", episodeIDs).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

// seasonViews is the sum of the season's episode views.
func seasonViews(seasonID string) (int64, error) {
	var s catalog.Season
	if err := database.DB.First(&s, "season_id = ?", seasonID).Error; err != nil {
		return 0, err
	}
	return sumEpisodeViews(s.EpisodeIDList)
}

// showViews is the sum of the show's episode views.
func showViews(id string) (int64, error) {
	var s catalog.Show
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return sumEpisodeViews(s.EpisodeIDList)
}

// webSeriesViews sums episode views across every season of the series.
func webSeriesViews(contentID string) (int64, error) {
	var ws catalog.WebSeries
	if err := database.DB.First(&ws, "content_id = ?", contentID).Error; err != nil {
		return 0, err
	}

	var total int64
	for _, seasonID := range ws.SeasonIDList {
		n, err := seasonViews(seasonID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return 0, err
		}
		total += n
	}
	return total, nil
}

// ------------------------------
// GET /api/platform-stats
// ------------------------------
func GetPlatformStats(c *gin.Context) {
	var movieCount, webSeriesCount, showCount int64
	var movieViewTotal, episodeViewTotal int64

	db := database.DB
	if err := db.Model(&catalog.ContentRecord{}).Where("content_type = ?", catalog.TypeMovie).Count(&movieCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get platform stats"})
		return
	}
	if err := db.Model(&catalog.ContentRecord{}).Where("content_type = ?", catalog.TypeWebSeries).Count(&webSeriesCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get platform stats"})
		return
	}
	if err := db.Model(&catalog.ContentRecord{}).Where("content_type = ?", catalog.TypeShow).Count(&showCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get platform stats"})
		return
	}
	if err := db.Model(&catalog.Movie{}).Select("COALESCE(SUM(views), 0)").Scan(&movieViewTotal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get platform stats"})
		return
	}
	if err := db.Model(&catalog.Episode{}).Select("COALESCE(SUM(views), 0)").Scan(&episodeViewTotal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get platform stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_movies":     movieCount,
		"total_web_series": webSeriesCount,
		"total_shows":      showCount,
		"total_views":      movieViewTotal + episodeViewTotal,
	})
}
