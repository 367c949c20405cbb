package catalog

import (
	"streaming-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// DetailResolver resolves a ContentRecord's foreign key to its type-specific
// detail row. Missing rows come back as an error (gorm.ErrRecordNotFound from
// the database implementation); the aggregation engine treats any resolution
// error as "record absent" and skips.
type DetailResolver interface {
	MovieByContentID(contentID string) (*catalog.Movie, error)
	WebSeriesByContentID(contentID string) (*catalog.WebSeries, error)
	SeasonByID(seasonID string) (*SeasonDetail, error)
	ShowByID(id string) (*catalog.Show, error)
}

type dbResolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) DetailResolver {
	return &dbResolver{db: db}
}

func (r *dbResolver) MovieByContentID(contentID string) (*catalog.Movie, error) {
	var m catalog.Movie
	if err := r.db.First(&m, "content_id = ?", contentID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *dbResolver) WebSeriesByContentID(contentID string) (*catalog.WebSeries, error) {
	var ws catalog.WebSeries
	if err := r.db.First(&ws, "content_id = ?", contentID).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *dbResolver) SeasonByID(seasonID string) (*SeasonDetail, error) {
	var s catalog.Season
	if err := r.db.First(&s, "season_id = ?", seasonID).Error; err != nil {
		return nil, err
	}

	detail := SeasonDetail{Season: s, Episodes: make([]catalog.Episode, 0, len(s.EpisodeIDList))}
	for _, episodeID := range s.EpisodeIDList {
		var e catalog.Episode
		if err := r.db.First(&e, "episode_id = ?", episodeID).Error; err != nil {
			// dangling episode id, keep the rest of the season
			continue
		}
		detail.Episodes = append(detail.Episodes, e)
	}
	return &detail, nil
}

func (r *dbResolver) ShowByID(id string) (*catalog.Show, error) {
	var s catalog.Show
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
