package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fable/pkg/export"
	"fable/pkg/utils"
)

func attachment(c echo.Context, filename, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", utils.SanitizeFilename(filename)))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func (s *Server) handleGetDownload(c echo.Context) error {
	story, ok := s.History.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "story not found")
	}
	return attachment(c, export.Filename(story.Title, time.Now()), export.Render(story))
}

func (s *Server) handleGetExport(c echo.Context) error {
	stories := s.History.List()
	if len(stories) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no stories to export")
	}
	return attachment(c, export.AllFilename(time.Now()), export.RenderAll(stories))
}
