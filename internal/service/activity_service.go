package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/playlist-service/internal/events"
	"github.com/spec-kit/playlist-service/internal/observability"
)

// ActivityService records playlist activity from domain events.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to playlist events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventPlaylistCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventPlaylistUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventPlaylistDeleted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventPlaylistSongAdded, a.handleEvent)
}

func (a *ActivityService) handleEvent(_ context.Context, event events.Event) error {
	a.metrics.RecordEvent(string(event.Type))
	a.logger.Info("playlist activity",
		zap.String("event", string(event.Type)),
		zap.String("playlist_id", event.PlaylistID),
		zap.String("owner_id", event.OwnerID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
