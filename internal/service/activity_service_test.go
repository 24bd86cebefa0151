package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/playlist-service/internal/domain"
	"github.com/spec-kit/playlist-service/internal/events"
	"github.com/spec-kit/playlist-service/internal/observability"
)

func TestActivityService(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	activity := NewActivityService(dispatcher, zap.NewNop(), metrics)
	activity.RegisterHandlers()

	svc := NewPlaylistService(newFakePlaylistRepo(), dispatcher)

	ctx := context.Background()
	created, err := svc.Create(ctx, "owner-1", PlaylistCreateInput{Name: "Mix"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	song := domain.Song{Title: "X", Artist: "A"}
	if _, err := svc.AddSong(ctx, created.ID, "owner-1", song); err != nil {
		t.Fatalf("AddSong() error = %v", err)
	}
	if _, err := svc.AddSong(ctx, created.ID, "owner-1", song); err != nil {
		t.Fatalf("AddSong() error = %v", err)
	}

	if got := metrics.EventCount(string(events.EventPlaylistCreated)); got != 1 {
		t.Errorf("expected 1 created event, got %d", got)
	}
	if got := metrics.EventCount(string(events.EventPlaylistSongAdded)); got != 2 {
		t.Errorf("expected 2 song_added events, got %d", got)
	}
	if got := metrics.EventCount(string(events.EventPlaylistDeleted)); got != 0 {
		t.Errorf("expected no deleted events, got %d", got)
	}
}
