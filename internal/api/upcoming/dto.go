package upcoming

// AnnouncementRequest is the admin submission payload for create and update.
// Every field is required by the form; validate() enforces the ones gin's
// binding cannot express.
type AnnouncementRequest struct {
	Title        string   `json:"title" binding:"required"`
	ContentType  string   `json:"content_type" binding:"required"`
	ReleaseDate  string   `json:"release_date" binding:"required"` // YYYY-MM-DD
	RatingType   string   `json:"rating_type"`
	Description  string   `json:"description" binding:"required"`
	ThumbnailURL string   `json:"thumbnail_url" binding:"required"`
	TrailerURL   string   `json:"trailer_url" binding:"required"`
	ContentOrder int      `json:"content_order" binding:"required"`
	Genre        []string `json:"genre" binding:"required"`
	Directors    []string `json:"directors" binding:"required"`
	Writers      []string `json:"writers" binding:"required"`
	CastMembers  []string `json:"cast_members" binding:"required"`
}
