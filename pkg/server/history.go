package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fable/pkg/storyboard"
)

func (s *Server) handleGetStories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"stories": s.History.List(),
		"count":   s.History.Len(),
	})
}

func (s *Server) handleGetStory(c echo.Context) error {
	story, ok := s.History.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "story not found")
	}
	return c.JSON(http.StatusOK, story)
}

// handleDeleteStory is idempotent: deleting an unknown id still succeeds.
func (s *Server) handleDeleteStory(c echo.Context) error {
	if err := s.History.Remove(c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete story")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetStoryboard(c echo.Context) error {
	story, ok := s.History.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "story not found")
	}
	return c.JSON(http.StatusOK, storyboard.Build(story.Content))
}
