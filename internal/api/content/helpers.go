package content

import (
	"fmt"

	"streaming-app/internal/domain/catalog"

	"gorm.io/gorm"
)

func createEpisodes(tx *gorm.DB, inputs []EpisodeInput) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		e := catalog.Episode{
			Title:        in.Title,
			Duration:     in.Duration,
			Description:  in.Description,
			VideoURL:     in.VideoURL,
			ThumbnailURL: in.ThumbnailURL,
		}
		if err := tx.Create(&e).Error; err != nil {
			return nil, err
		}
		ids = append(ids, e.EpisodeID)
	}
	return ids, nil
}

func createSeasons(tx *gorm.DB, inputs []SeasonInput) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		episodeIDs, err := createEpisodes(tx, in.Episodes)
		if err != nil {
			return nil, err
		}

		s := catalog.Season{
			SeasonTitle:       in.Title,
			SeasonDescription: in.Description,
			ReleaseYear:       in.ReleaseYear,
			RatingType:        in.RatingType,
			Rating:            in.Rating,
			Director:          in.Directors,
			Writer:            in.Writers,
			CastMembers:       in.CastMembers,
			ThumbnailURL:      in.ThumbnailURL,
			TrailerURL:        in.TrailerURL,
			FeatureIn:         in.FeatureIn,
			EpisodeIDList:     episodeIDs,
		}
		if err := tx.Create(&s).Error; err != nil {
			return nil, err
		}
		ids = append(ids, s.SeasonID)
	}
	return ids, nil
}

func deleteEpisodes(tx *gorm.DB, episodeIDs []string) error {
	if len(episodeIDs) == 0 {
		return nil
	}
	return tx.Where("episode_id IN ?", episodeIDs).Delete(&catalog.Episode{}).Error
}

func deleteSeasons(tx *gorm.DB, seasonIDs []string) error {
	for _, seasonID := range seasonIDs {
		var s catalog.Season
		if err := tx.First(&s, "season_id = ?", seasonID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return err
		}
		if err := deleteEpisodes(tx, s.EpisodeIDList); err != nil {
			return err
		}
		if err := tx.Delete(&catalog.Season{}, "season_id = ?", seasonID).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteDetailTree removes the type-specific rows behind a ContentRecord:
// the detail row itself plus any seasons and episodes hanging off it.
func deleteDetailTree(tx *gorm.DB, rec *catalog.ContentRecord) error {
	switch rec.ContentType {
	case catalog.TypeMovie:
		return tx.Delete(&catalog.Movie{}, "content_id = ?", rec.ContentID).Error

	case catalog.TypeWebSeries:
		var ws catalog.WebSeries
		if err := tx.First(&ws, "content_id = ?", rec.ContentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if err := deleteSeasons(tx, ws.SeasonIDList); err != nil {
			return err
		}
		return tx.Delete(&catalog.WebSeries{}, "content_id = ?", rec.ContentID).Error

	case catalog.TypeShow:
		var s catalog.Show
		if err := tx.First(&s, "id = ?", rec.ContentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if err := deleteEpisodes(tx, s.EpisodeIDList); err != nil {
			return err
		}
		return tx.Delete(&catalog.Show{}, "id = ?", rec.ContentID).Error
	}
	return fmt.Errorf("unknown content type %q", rec.ContentType)
}

// createDetail builds the type-specific rows for an upload and returns the
// new detail id to link into the ContentRecord.
func createDetail(tx *gorm.DB, input *ContentInput) (string, error) {
	switch input.ContentType {
	case catalog.TypeMovie:
		m := catalog.Movie{
			Description:  input.Description,
			ReleaseYear:  input.ReleaseYear,
			RatingType:   input.RatingType,
			Rating:       input.Rating,
			Duration:     input.Duration,
			Director:     input.Directors,
			Writer:       input.Writers,
			CastMembers:  input.CastMembers,
			ThumbnailURL: input.ThumbnailURL,
			TrailerURL:   input.TrailerURL,
			VideoURL:     input.VideoURL,
			FeatureIn:    input.FeatureIn,
		}
		if err := tx.Create(&m).Error; err != nil {
			return "", err
		}
		return m.ContentID, nil

	case catalog.TypeWebSeries:
		seasonIDs, err := createSeasons(tx, input.Seasons)
		if err != nil {
			return "", err
		}
		ws := catalog.WebSeries{SeasonIDList: seasonIDs}
		if err := tx.Create(&ws).Error; err != nil {
			return "", err
		}
		return ws.ContentID, nil

	case catalog.TypeShow:
		episodeIDs, err := createEpisodes(tx, input.Episodes)
		if err != nil {
			return "", err
		}
		s := catalog.Show{
			Description:   input.Description,
			ReleaseYear:   input.ReleaseYear,
			RatingType:    input.RatingType,
			Rating:        input.Rating,
			Directors:     input.Directors,
			Writers:       input.Writers,
			CastMembers:   input.CastMembers,
			ThumbnailURL:  input.ThumbnailURL,
			TrailerURL:    input.TrailerURL,
			FeatureIn:     input.FeatureIn,
			EpisodeIDList: episodeIDs,
		}
		if err := tx.Create(&s).Error; err != nil {
			return "", err
		}
		return s.ID, nil
	}
	return "", fmt.Errorf("unknown content type %q", input.ContentType)
}
