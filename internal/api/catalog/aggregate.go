package catalog

import (
	"slices"

	"streaming-app/internal/domain/catalog"
)

// AggregateAll flattens ContentRecords into DisplayRecords. Movies and shows
// emit one record each; web series fan out to one record per resolvable
// season. A record (or single season) whose detail row cannot be resolved is
// skipped without error — catalog reads treat dangling foreign keys as
// absent content.
//
// Input order is preserved; callers pre-sort (updated_at then created_at
// descending). Season records take the season's own timestamps when present
// so they sort by season recency downstream.
func AggregateAll(records []catalog.ContentRecord, resolver DetailResolver) []DisplayRecord {
	out := make([]DisplayRecord, 0, len(records))
	for _, rec := range records {
		out = appendRecord(out, rec, resolver, nil)
	}
	return out
}

// FilterByFeature aggregates only records placed under the given feature tag.
// Movies and shows are checked against their own FeatureIn; each web-series
// season is checked independently against the season's FeatureIn, never the
// parent's.
func FilterByFeature(records []catalog.ContentRecord, resolver DetailResolver, tag string) []DisplayRecord {
	match := func(featureIn []string) bool {
		return slices.Contains(featureIn, tag)
	}
	out := make([]DisplayRecord, 0, len(records))
	for _, rec := range records {
		out = appendRecord(out, rec, resolver, match)
	}
	return out
}

// FilterByGenre aggregates records whose ContentRecord-level genre set
// matches. "Action & Adventure" is a pseudo-genre matching either "Action"
// or "Adventure". Genre lives on the parent record, so a matching web series
// fans out to all of its seasons.
func FilterByGenre(records []catalog.ContentRecord, resolver DetailResolver, genre string) []DisplayRecord {
	genresToCheck := []string{genre}
	if genre == "Action & Adventure" {
		genresToCheck = []string{"Action", "Adventure"}
	}

	matching := make([]catalog.ContentRecord, 0, len(records))
	for _, rec := range records {
		for _, g := range rec.Genre {
			if slices.Contains(genresToCheck, g) {
				matching = append(matching, rec)
				break
			}
		}
	}
	return AggregateAll(matching, resolver)
}

// appendRecord resolves one ContentRecord and appends its DisplayRecords.
// featureMatch, when non-nil, gates each emitted record on its own FeatureIn.
func appendRecord(out []DisplayRecord, rec catalog.ContentRecord, resolver DetailResolver, featureMatch func([]string) bool) []DisplayRecord {
	switch rec.ContentType {
	case catalog.TypeMovie:
		movie, err := resolver.MovieByContentID(rec.ContentID)
		if err != nil {
			return out
		}
		if featureMatch != nil && !featureMatch(movie.FeatureIn) {
			return out
		}
		out = append(out, DisplayRecord{
			ID:          rec.ID,
			Kind:        KindMovie,
			Title:       rec.Title,
			ContentType: rec.ContentType,
			Genre:       rec.Genre,
			ContentID:   rec.ContentID,
			Movie:       movie,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})

	case catalog.TypeWebSeries:
		ws, err := resolver.WebSeriesByContentID(rec.ContentID)
		if err != nil {
			return out
		}
		for i, seasonID := range ws.SeasonIDList {
			season, err := resolver.SeasonByID(seasonID)
			if err != nil {
				// skip just this season, siblings still emit
				continue
			}
			if featureMatch != nil && !featureMatch(season.FeatureIn) {
				continue
			}

			dr := DisplayRecord{
				ID:           SeasonDisplayID(rec.ID, i+1),
				Kind:         KindSeason,
				Title:        rec.Title,
				ContentType:  rec.ContentType,
				Genre:        rec.Genre,
				ContentID:    rec.ContentID,
				SeasonNumber: i + 1,
				Season:       season,
				CreatedAt:    rec.CreatedAt,
				UpdatedAt:    rec.UpdatedAt,
			}
			if !season.CreatedAt.IsZero() {
				dr.CreatedAt = season.CreatedAt
			}
			if !season.UpdatedAt.IsZero() {
				dr.UpdatedAt = season.UpdatedAt
			}
			out = append(out, dr)
		}

	case catalog.TypeShow:
		show, err := resolver.ShowByID(rec.ContentID)
		if err != nil {
			return out
		}
		if featureMatch != nil && !featureMatch(show.FeatureIn) {
			return out
		}
		out = append(out, DisplayRecord{
			ID:          rec.ID,
			Kind:        KindShow,
			Title:       rec.Title,
			ContentType: rec.ContentType,
			Genre:       rec.Genre,
			ContentID:   rec.ContentID,
			Show:        show,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return out
}
