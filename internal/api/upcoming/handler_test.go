package upcoming

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"streaming-app/database"
	"streaming-app/internal/domain/upcoming"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	// shared cache keeps the in-memory db alive across pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/upcoming", ListUpcoming)
	r.POST("/api/upcoming", CreateUpcoming)
	r.PUT("/api/upcoming/:id", UpdateUpcoming)
	r.DELETE("/api/upcoming/:id", DeleteUpcoming)
	r.POST("/api/upcoming/cleanup", CleanupExpired)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload(order int) map[string]interface{} {
	return map[string]interface{}{
		"title":         "Upcoming Title",
		"content_type":  "Movie",
		"release_date":  time.Now().AddDate(0, 1, 0).Format(releaseDateLayout),
		"rating_type":   "PG-13",
		"description":   "An announcement",
		"thumbnail_url": "https://cdn.example.com/t.jpg",
		"trailer_url":   "https://cdn.example.com/t.mp4",
		"content_order": order,
		"genre":         []string{"Drama"},
		"directors":     []string{"D"},
		"writers":       []string{"W"},
		"cast_members":  []string{"C"},
	}
}

func seedAnnouncement(t *testing.T, order int) upcoming.UpcomingContent {
	t.Helper()
	row := upcoming.UpcomingContent{
		Title:        fmt.Sprintf("Seed %d", order),
		ContentType:  "Movie",
		ReleaseDate:  time.Now().AddDate(0, 2, 0),
		Genre:        []string{"Drama"},
		CastMembers:  []string{"C"},
		Directors:    []string{"D"},
		Writers:      []string{"W"},
		ContentOrder: order,
	}
	require.NoError(t, database.DB.Create(&row).Error)
	return row
}

func liveOrders(t *testing.T) []int {
	t.Helper()
	var rows []upcoming.UpcomingContent
	require.NoError(t, database.DB.Order("content_order ASC").Find(&rows).Error)
	orders := make([]int, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.ContentOrder)
	}
	return orders
}

func TestValidateReleaseDateBounds(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	base := AnnouncementRequest{
		Title: "t", ContentType: "Movie", Description: "d",
		ThumbnailURL: "u", TrailerURL: "u", ContentOrder: 1,
		Genre: []string{"g"}, Directors: []string{"d"},
		Writers: []string{"w"}, CastMembers: []string{"c"},
	}

	cases := []struct {
		date string
		ok   bool
	}{
		{"2026-03-15", false}, // today
		{"2026-03-16", true},  // tomorrow
		{"2029-03-15", true},  // exactly 3 years out
		{"2029-03-16", false}, // past the 3-year window
		{"16-03-2026", false}, // wrong format
	}
	for _, tc := range cases {
		req := base
		req.ReleaseDate = tc.date
		_, err := req.validate(now)
		if tc.ok {
			assert.NoError(t, err, tc.date)
		} else {
			assert.Error(t, err, tc.date)
		}
	}
}

func TestValidateContentOrderBounds(t *testing.T) {
	req := AnnouncementRequest{
		Title: "t", ContentType: "Movie", Description: "d",
		ThumbnailURL: "u", TrailerURL: "u",
		ReleaseDate: "2026-06-01",
		Genre:       []string{"g"}, Directors: []string{"d"},
		Writers: []string{"w"}, CastMembers: []string{"c"},
	}
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	req.ContentOrder = 0
	_, err := req.validate(now)
	assert.Error(t, err)

	req.ContentOrder = 21
	_, err = req.validate(now)
	assert.Error(t, err)

	req.ContentOrder = 20
	_, err = req.validate(now)
	assert.NoError(t, err)
}

func TestValidateRejectsEmptyArrays(t *testing.T) {
	req := AnnouncementRequest{
		Title: "t", ContentType: "Movie", Description: "d",
		ThumbnailURL: "u", TrailerURL: "u", ContentOrder: 1,
		ReleaseDate: "2026-06-01",
		Genre:       []string{}, Directors: []string{"d"},
		Writers: []string{"w"}, CastMembers: []string{"c"},
	}
	_, err := req.validate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestCreateUpcoming(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/upcoming", validPayload(1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created upcoming.UpcomingContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.ContentOrder)

	assert.Equal(t, []int{1}, liveOrders(t))
}

func TestCreateUpcomingShiftsConflictingSlot(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	seedAnnouncement(t, 1)
	seedAnnouncement(t, 2)

	w := doJSON(r, http.MethodPost, "/api/upcoming", validPayload(1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// existing rows moved up, no duplicates
	assert.Equal(t, []int{1, 2, 3}, liveOrders(t))
}

func TestCreateUpcomingCapacityCap(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	for i := 1; i <= upcoming.MaxAnnouncements; i++ {
		seedAnnouncement(t, i)
	}

	w := doJSON(r, http.MethodPost, "/api/upcoming", validPayload(5))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&upcoming.UpcomingContent{}).Count(&count).Error)
	assert.EqualValues(t, upcoming.MaxAnnouncements, count)
}

func TestUpdateUpcomingNotFound(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := doJSON(r, http.MethodPut, "/api/upcoming/nope", validPayload(1))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUpcomingKeepsOwnSlot(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	row := seedAnnouncement(t, 3)
	seedAnnouncement(t, 4)

	// re-submitting the same order must not shift the neighbor
	w := doJSON(r, http.MethodPut, "/api/upcoming/"+row.ID, validPayload(3))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []int{3, 4}, liveOrders(t))
}

func TestDeleteUpcoming(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	row := seedAnnouncement(t, 1)
	seedAnnouncement(t, 2)

	w := doJSON(r, http.MethodDelete, "/api/upcoming/"+row.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// remaining orders keep their slots, gap is fine
	assert.Equal(t, []int{2}, liveOrders(t))

	w = doJSON(r, http.MethodDelete, "/api/upcoming/"+row.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCleanupExpired(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	expired := upcoming.UpcomingContent{
		Title: "old", ContentType: "Movie",
		ReleaseDate:  time.Now().AddDate(0, 0, -2),
		ContentOrder: 1,
	}
	require.NoError(t, database.DB.Create(&expired).Error)
	seedAnnouncement(t, 2)

	w := doJSON(r, http.MethodPost, "/api/upcoming/cleanup", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["deleted_count"])
	assert.Equal(t, []int{2}, liveOrders(t))
}
