package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/playlist-service/internal/domain"
	"github.com/spec-kit/playlist-service/internal/events"
	"github.com/spec-kit/playlist-service/internal/repository"
	apperrors "github.com/spec-kit/playlist-service/pkg/util/errorutil"
)

// PlaylistCreateInput describes playlist creation payload. The owner never
// comes from the request body; it is stamped from the authenticated caller.
type PlaylistCreateInput struct {
	Name        string
	Description string
	Songs       []domain.Song
}

// PlaylistService coordinates owner-scoped playlist workflows.
type PlaylistService struct {
	playlists  repository.PlaylistRepository
	dispatcher events.Dispatcher
}

// NewPlaylistService constructs the service.
func NewPlaylistService(playlists repository.PlaylistRepository, dispatcher events.Dispatcher) *PlaylistService {
	return &PlaylistService{playlists: playlists, dispatcher: dispatcher}
}

// List returns all playlists owned by the caller in insertion order.
func (s *PlaylistService) List(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	return s.playlists.ListByOwner(ctx, ownerID)
}

// Create persists a playlist owned by the caller.
func (s *PlaylistService) Create(ctx context.Context, ownerID string, input PlaylistCreateInput) (*domain.Playlist, error) {
	playlist := &domain.Playlist{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Songs:       input.Songs,
	}
	if playlist.Songs == nil {
		playlist.Songs = []domain.Song{}
	}

	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:       events.EventPlaylistCreated,
		PlaylistID: playlist.ID,
		OwnerID:    ownerID,
		Payload: events.PlaylistCreatedPayload{
			Name:      playlist.Name,
			SongCount: len(playlist.Songs),
		},
	})
	return playlist, nil
}

// Update applies a partial patch to a playlist owned by the caller.
func (s *PlaylistService) Update(ctx context.Context, id, ownerID string, patch repository.PlaylistPatch) (*domain.Playlist, error) {
	playlist, err := s.playlists.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, mapPlaylistError(err)
	}

	s.publish(ctx, events.Event{
		Type:       events.EventPlaylistUpdated,
		PlaylistID: playlist.ID,
		OwnerID:    ownerID,
		Payload: events.PlaylistUpdatedPayload{
			Name:        playlist.Name,
			Description: playlist.Description,
		},
	})
	return playlist, nil
}

// Delete removes a playlist owned by the caller.
func (s *PlaylistService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.playlists.Delete(ctx, id, ownerID); err != nil {
		return mapPlaylistError(err)
	}

	s.publish(ctx, events.Event{
		Type:       events.EventPlaylistDeleted,
		PlaylistID: id,
		OwnerID:    ownerID,
	})
	return nil
}

// AddSong appends a song to the end of a playlist owned by the caller.
func (s *PlaylistService) AddSong(ctx context.Context, id, ownerID string, song domain.Song) (*domain.Playlist, error) {
	playlist, err := s.playlists.AppendSong(ctx, id, ownerID, song)
	if err != nil {
		return nil, mapPlaylistError(err)
	}

	s.publish(ctx, events.Event{
		Type:       events.EventPlaylistSongAdded,
		PlaylistID: playlist.ID,
		OwnerID:    ownerID,
		Payload: events.PlaylistSongAddedPayload{
			Title:  song.Title,
			Artist: song.Artist,
		},
	})
	return playlist, nil
}

func (s *PlaylistService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func mapPlaylistError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("playlist", nil)
	}
	return err
}
