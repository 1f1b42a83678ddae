package models

import "time"

// Album is a gallery of images. Image holds the cover reference as a
// relative path under the upload prefix (e.g. "/uploads/169..._ab12.jpg").
type Album struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
