package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"streaming-app/database"
	"streaming-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/content", GetAllContent)
	r.GET("/api/content/feature/:tag", GetContentByFeature)
	r.GET("/api/content/genre/:genre", GetContentByGenre)
	r.GET("/api/content/:id", GetContentByID)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedSeries(t *testing.T) catalog.ContentRecord {
	t.Helper()
	e1 := catalog.Episode{Title: "E1"}
	e2 := catalog.Episode{Title: "E2"}
	require.NoError(t, database.DB.Create(&e1).Error)
	require.NoError(t, database.DB.Create(&e2).Error)

	s1 := catalog.Season{SeasonTitle: "S1", EpisodeIDList: []string{e1.EpisodeID}}
	s2 := catalog.Season{SeasonTitle: "S2", EpisodeIDList: []string{e2.EpisodeID}}
	require.NoError(t, database.DB.Create(&s1).Error)
	require.NoError(t, database.DB.Create(&s2).Error)

	ws := catalog.WebSeries{SeasonIDList: []string{s1.SeasonID, s2.SeasonID}}
	require.NoError(t, database.DB.Create(&ws).Error)

	rec := catalog.ContentRecord{
		Title:       "A Series",
		ContentType: catalog.TypeWebSeries,
		Genre:       []string{"Sci-Fi"},
		ContentID:   ws.ContentID,
	}
	require.NoError(t, database.DB.Create(&rec).Error)
	return rec
}

func TestGetAllContentGroupsByKind(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	movie := catalog.Movie{}
	require.NoError(t, database.DB.Create(&movie).Error)
	require.NoError(t, database.DB.Create(&catalog.ContentRecord{
		Title: "A Movie", ContentType: catalog.TypeMovie, ContentID: movie.ContentID,
	}).Error)
	seedSeries(t)

	w := get(r, "/api/content")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Movies    []DisplayRecord `json:"movies"`
		WebSeries []DisplayRecord `json:"webSeries"`
		Shows     []DisplayRecord `json:"shows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Movies, 1)
	assert.Len(t, resp.WebSeries, 2) // one per season
	assert.Empty(t, resp.Shows)
}

func TestGetContentByIDPlain(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	movie := catalog.Movie{Duration: 100}
	require.NoError(t, database.DB.Create(&movie).Error)
	rec := catalog.ContentRecord{Title: "A Movie", ContentType: catalog.TypeMovie, ContentID: movie.ContentID}
	require.NoError(t, database.DB.Create(&rec).Error)

	w := get(r, "/api/content/"+rec.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var dr DisplayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dr))
	assert.Equal(t, KindMovie, dr.Kind)
	require.NotNil(t, dr.Movie)
	assert.Equal(t, 100, dr.Movie.Duration)
}

func TestGetContentByIDCompositeSeason(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	rec := seedSeries(t)

	w := get(r, "/api/content/"+SeasonDisplayID(rec.ID, 2))
	require.Equal(t, http.StatusOK, w.Code)

	var dr DisplayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dr))
	assert.Equal(t, KindSeason, dr.Kind)
	assert.Equal(t, 2, dr.SeasonNumber)
	require.NotNil(t, dr.Season)
	assert.Equal(t, "S2", dr.Season.SeasonTitle)
	assert.Len(t, dr.Season.Episodes, 1)
}

func TestGetContentByIDMissingSeasonNumber(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	rec := seedSeries(t)

	w := get(r, "/api/content/"+SeasonDisplayID(rec.ID, 9))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetContentByIDNotFound(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := get(r, "/api/content/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetContentByGenreEndToEnd(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	seedSeries(t)

	w := get(r, "/api/content/genre/Sci-Fi")
	require.Equal(t, http.StatusOK, w.Code)

	var out []DisplayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 2)

	w = get(r, "/api/content/genre/Horror")
	require.Equal(t, http.StatusOK, w.Code)
	out = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Empty(t, out)
}
