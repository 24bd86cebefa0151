package dto

import (
	"time"

	"github.com/spec-kit/playlist-service/internal/domain"
)

// SongPayload is the wire shape of a playlist song.
type SongPayload struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Album     string `json:"album"`
	SpotifyID string `json:"spotify_id"`
	ImageURL  string `json:"image_url"`
}

// CreatePlaylistRequest payload. Any owner field sent by the client is
// ignored; ownership comes from the authenticated caller.
type CreatePlaylistRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Songs       []SongPayload `json:"songs"`
}

// UpdatePlaylistRequest payload; nil fields are left unchanged.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PlaylistResponse is the wire shape of a playlist.
type PlaylistResponse struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Songs       []SongPayload `json:"songs"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AddSongResponse wraps the updated playlist after a song append.
type AddSongResponse struct {
	Message  string           `json:"message"`
	Playlist PlaylistResponse `json:"playlist"`
}

// NewSong converts a payload to the domain model.
func (p SongPayload) NewSong() domain.Song {
	return domain.Song{
		Title:     p.Title,
		Artist:    p.Artist,
		Album:     p.Album,
		SpotifyID: p.SpotifyID,
		ImageURL:  p.ImageURL,
	}
}

// NewPlaylistResponse maps a domain playlist to its wire shape.
func NewPlaylistResponse(playlist *domain.Playlist) PlaylistResponse {
	songs := make([]SongPayload, 0, len(playlist.Songs))
	for _, song := range playlist.Songs {
		songs = append(songs, SongPayload{
			Title:     song.Title,
			Artist:    song.Artist,
			Album:     song.Album,
			SpotifyID: song.SpotifyID,
			ImageURL:  song.ImageURL,
		})
	}
	return PlaylistResponse{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		Songs:       songs,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}
