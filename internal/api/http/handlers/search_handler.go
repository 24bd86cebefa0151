package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playlist-service/internal/api/dto"
	"github.com/spec-kit/playlist-service/internal/service"
)

// SearchHandler exposes the catalog search proxy.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs handler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{search: searchService}
}

// Search handles GET /api/spotify/search?q=.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	results, err := h.search.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSearchResponse(results))
}
