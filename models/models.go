package models

// Post is a single entry in a user's timeline.
type Post struct {
	ContentId int   `json:"contentId"`
	Seq       int64 `json:"seq"` // Store-wide ordering key, not a timestamp
}

// Newer reports whether p was created after other
func (p Post) Newer(other Post) bool {
	return p.Seq > other.Seq
}
