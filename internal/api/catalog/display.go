package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"streaming-app/internal/domain/catalog"
)

type DisplayKind string

const (
	KindMovie  DisplayKind = "movie"
	KindSeason DisplayKind = "season"
	KindShow   DisplayKind = "show"
)

// DisplayRecord is the flattened view model the catalog pages render. Movies
// and shows map 1:1 to their ContentRecord; every web-series season becomes
// its own record with a synthesized composite id.
type DisplayRecord struct {
	ID          string      `json:"id"`
	Kind        DisplayKind `json:"kind"`
	Title       string      `json:"title"`
	ContentType string      `json:"content_type"`
	Genre       []string    `json:"genre"`
	ContentID   string      `json:"content_id"`

	// SeasonNumber is 1-indexed and set only for Kind == KindSeason.
	SeasonNumber int `json:"season_number,omitempty"`

	Movie  *catalog.Movie `json:"movie,omitempty"`
	Season *SeasonDetail  `json:"season,omitempty"`
	Show   *catalog.Show  `json:"show,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeasonDetail is a season with its episode list resolved.
type SeasonDetail struct {
	catalog.Season
	Episodes []catalog.Episode `json:"episodes"`
}

const seasonIDSep = "-season-"

// SeasonDisplayID builds the composite id for season n of a web series
// ContentRecord. ParseDisplayID is the inverse; keep the two in sync.
func SeasonDisplayID(baseID string, n int) string {
	return fmt.Sprintf("%s%s%d", baseID, seasonIDSep, n)
}

// ParseDisplayID splits a display id back into the ContentRecord id and the
// season number. For movie/show ids (no season suffix) it returns the id
// unchanged with seasonNumber 0.
func ParseDisplayID(id string) (baseID string, seasonNumber int) {
	idx := strings.LastIndex(id, seasonIDSep)
	if idx < 0 {
		return id, 0
	}
	n, err := strconv.Atoi(id[idx+len(seasonIDSep):])
	if err != nil || n < 1 {
		return id, 0
	}
	return id[:idx], n
}
