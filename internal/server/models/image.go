package models

import "time"

// Image belongs to exactly one album and is removed with it. Link is an
// optional external URL shown alongside the photo.
type Image struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Link        *string   `json:"link"`
	AlbumID     int64     `json:"album_id"`
	CreatedAt   time.Time `json:"created_at"`
}
