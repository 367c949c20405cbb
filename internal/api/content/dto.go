package content

type EpisodeInput struct {
	Title        string `json:"title" binding:"required"`
	Duration     int    `json:"duration"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type SeasonInput struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ReleaseYear  int            `json:"release_year"`
	RatingType   string         `json:"rating_type"`
	Rating       float64        `json:"rating"`
	Directors    []string       `json:"directors"`
	Writers      []string       `json:"writers"`
	CastMembers  []string       `json:"cast_members"`
	ThumbnailURL string         `json:"thumbnail_url"`
	TrailerURL   string         `json:"trailer_url"`
	FeatureIn    []string       `json:"feature_in"`
	Episodes     []EpisodeInput `json:"episodes"`
}

// ContentInput carries the admin upload form for all three content types;
// type-specific sections are ignored for the other types.
type ContentInput struct {
	Title       string   `json:"title" binding:"required"`
	ContentType string   `json:"content_type" binding:"required"`
	Genre       []string `json:"genre"`

	// movie / show fields
	Description  string   `json:"description"`
	ReleaseYear  int      `json:"release_year"`
	RatingType   string   `json:"rating_type"`
	Rating       float64  `json:"rating"`
	Duration     int      `json:"duration"` // movie only
	Directors    []string `json:"directors"`
	Writers      []string `json:"writers"`
	CastMembers  []string `json:"cast_members"`
	ThumbnailURL string   `json:"thumbnail_url"`
	TrailerURL   string   `json:"trailer_url"`
	VideoURL     string   `json:"video_url"` // movie only
	FeatureIn    []string `json:"feature_in"`

	// web series
	Seasons []SeasonInput `json:"seasons"`

	// show
	Episodes []EpisodeInput `json:"episodes"`
}
