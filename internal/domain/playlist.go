package domain

import "time"

// Song is an entry inside a playlist's song list. Songs have no identity of
// their own; they live and die with the playlist. All fields are optional and
// the JSON tags match the stored document shape.
type Song struct {
	Title     string `json:"title,omitempty"`
	Artist    string `json:"artist,omitempty"`
	Album     string `json:"album,omitempty"`
	SpotifyID string `json:"spotify_id,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// Playlist is an ordered collection of songs owned by exactly one user.
// OwnerID is immutable after creation and always set server-side.
type Playlist struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Songs       []Song
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
