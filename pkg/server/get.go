package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Fable Story API",
		"status":  "ok",
	})
}

func (s *Server) handleGetMe(c echo.Context) error {
	acct, ok := s.Ledger.Current()
	if !ok {
		return signInRequired(c)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"account":      acct,
		"remaining":    s.Ledger.Remaining(),
		"can_generate": s.Ledger.CanGenerate(),
	})
}
