package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playlist-service/internal/api/dto"
	"github.com/spec-kit/playlist-service/internal/auth"
	"github.com/spec-kit/playlist-service/internal/domain"
	"github.com/spec-kit/playlist-service/internal/repository"
	"github.com/spec-kit/playlist-service/internal/service"
	apperrors "github.com/spec-kit/playlist-service/pkg/util/errorutil"
)

// PlaylistsHandler manages the owner-scoped playlist endpoints.
type PlaylistsHandler struct {
	service *service.PlaylistService
}

// NewPlaylistsHandler constructs handler.
func NewPlaylistsHandler(playlistService *service.PlaylistService) *PlaylistsHandler {
	return &PlaylistsHandler{service: playlistService}
}

// List handles GET /api/playlists.
func (h *PlaylistsHandler) List(c *fiber.Ctx) error {
	ownerID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	playlists, err := h.service.List(c.Context(), ownerID)
	if err != nil {
		return err
	}

	items := make([]dto.PlaylistResponse, 0, len(playlists))
	for i := range playlists {
		items = append(items, dto.NewPlaylistResponse(&playlists[i]))
	}
	return c.JSON(items)
}

// Create handles POST /api/playlists.
func (h *PlaylistsHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	songs := make([]domain.Song, 0, len(req.Songs))
	for _, song := range req.Songs {
		songs = append(songs, song.NewSong())
	}

	playlist, err := h.service.Create(c.Context(), ownerID, service.PlaylistCreateInput{
		Name:        req.Name,
		Description: req.Description,
		Songs:       songs,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPlaylistResponse(playlist))
}

// Update handles PUT /api/playlists/:id.
func (h *PlaylistsHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	playlist, err := h.service.Update(c.Context(), c.Params("id"), ownerID, repository.PlaylistPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPlaylistResponse(playlist))
}

// Delete handles DELETE /api/playlists/:id.
func (h *PlaylistsHandler) Delete(c *fiber.Ctx) error {
	ownerID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), ownerID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddSong handles POST /api/playlists/:id/songs.
func (h *PlaylistsHandler) AddSong(c *fiber.Ctx) error {
	ownerID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SongPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	playlist, err := h.service.AddSong(c.Context(), c.Params("id"), ownerID, req.NewSong())
	if err != nil {
		return err
	}
	return c.JSON(dto.AddSongResponse{
		Message:  "Song added to playlist",
		Playlist: dto.NewPlaylistResponse(playlist),
	})
}
