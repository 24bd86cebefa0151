package dto

import "github.com/spec-kit/playlist-service/internal/service"

// TrackResponse is a single projected catalog track.
type TrackResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
}

// SearchResponse wraps catalog search results.
type SearchResponse struct {
	Tracks []TrackResponse `json:"tracks"`
}

// NewSearchResponse maps projected tracks to the wire shape.
func NewSearchResponse(results []service.TrackResult) SearchResponse {
	tracks := make([]TrackResponse, 0, len(results))
	for _, result := range results {
		tracks = append(tracks, TrackResponse{
			ID:     result.ID,
			Name:   result.Name,
			Artist: result.Artist,
			Album:  result.Album,
		})
	}
	return SearchResponse{Tracks: tracks}
}
