package upcoming

import (
	"errors"
	"fmt"
	"time"

	"streaming-app/internal/domain/upcoming"
)

const releaseDateLayout = "2006-01-02"

// validate checks the submission beyond required-field binding and parses the
// release date. Runs before any persistence call.
func (req *AnnouncementRequest) validate(now time.Time) (time.Time, error) {
	if len(req.Genre) == 0 || len(req.Directors) == 0 ||
		len(req.Writers) == 0 || len(req.CastMembers) == 0 {
		return time.Time{}, errors.New("All fields are required. Please fill in all the form fields.")
	}

	if req.ContentOrder < 1 || req.ContentOrder > upcoming.MaxAnnouncements {
		return time.Time{}, fmt.Errorf("Content order must be between 1 and %d.", upcoming.MaxAnnouncements)
	}

	releaseDate, err := time.Parse(releaseDateLayout, req.ReleaseDate)
	if err != nil {
		return time.Time{}, errors.New("Release date must be in YYYY-MM-DD format.")
	}

	// compare at day granularity: tomorrow up to 3 years out
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	threeYearsFromNow := today.AddDate(3, 0, 0)

	if releaseDate.Before(tomorrow) || releaseDate.After(threeYearsFromNow) {
		return time.Time{}, errors.New("Release date must be from tomorrow onwards and within 3 years.")
	}

	return releaseDate, nil
}
