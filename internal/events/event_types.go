package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPlaylistCreated   EventType = "playlist_created"
	EventPlaylistUpdated   EventType = "playlist_updated"
	EventPlaylistDeleted   EventType = "playlist_deleted"
	EventPlaylistSongAdded EventType = "playlist_song_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type       EventType   `json:"type"`
	PlaylistID string      `json:"playlist_id"`
	OwnerID    string      `json:"owner_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// PlaylistCreatedPayload payload.
type PlaylistCreatedPayload struct {
	Name      string `json:"name"`
	SongCount int    `json:"song_count"`
}

// PlaylistUpdatedPayload payload.
type PlaylistUpdatedPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaylistSongAddedPayload payload.
type PlaylistSongAddedPayload struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}
