package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/playlist-service/internal/spotify"
	apperrors "github.com/spec-kit/playlist-service/pkg/util/errorutil"
)

// Catalog is the remote track catalog the search proxy forwards to.
type Catalog interface {
	SearchTracks(ctx context.Context, query string) ([]spotify.Track, error)
}

// TrackResult is the minimal track shape exposed to clients.
type TrackResult struct {
	ID     string
	Name   string
	Artist string
	Album  string
}

// SearchService proxies track searches to the remote catalog.
type SearchService struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewSearchService constructs the service.
func NewSearchService(catalog Catalog, logger *zap.Logger) *SearchService {
	return &SearchService{catalog: catalog, logger: logger}
}

// Search validates the query, forwards it to the catalog and projects the
// results. Upstream failure detail is logged server-side only; callers see a
// single generic error.
func (s *SearchService) Search(ctx context.Context, query string) ([]TrackResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query parameter 'q' is required", nil)
	}

	tracks, err := s.catalog.SearchTracks(ctx, query)
	if err != nil {
		s.logger.Error("spotify search failed", zap.Error(err))
		return nil, apperrors.NewUpstreamError("spotify search failed", err)
	}

	results := make([]TrackResult, 0, len(tracks))
	for _, track := range tracks {
		result := TrackResult{
			ID:    track.ID,
			Name:  track.Name,
			Album: track.Album.Name,
		}
		if len(track.Artists) > 0 {
			result.Artist = track.Artists[0].Name
		}
		results = append(results, result)
	}
	return results, nil
}
