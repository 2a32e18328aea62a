package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"fable/pkg/account"
	"fable/pkg/domain"
	"fable/pkg/inference"
	"fable/pkg/pipeline"
)

type generateReq struct {
	Prompt     string   `json:"prompt"`
	Genre      string   `json:"genre"`
	Tone       string   `json:"tone"`
	Length     int      `json:"length"`
	Characters []string `json:"characters"`
}

const (
	defaultGenre  = "Fantasy"
	defaultTone   = "Neutral"
	defaultLength = 500
)

func (s *Server) handlePostGenerate(c echo.Context) error {
	var req generateReq
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid JSON in /api/generate", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
	}
	if req.Genre == "" {
		req.Genre = defaultGenre
	}
	if req.Tone == "" {
		req.Tone = defaultTone
	}
	if req.Length <= 0 {
		req.Length = defaultLength
	}

	params := domain.Parameters{
		Genre:      req.Genre,
		Tone:       req.Tone,
		Length:     req.Length,
		Characters: req.Characters,
	}

	// Generations run on the server's context, not the request's: once a
	// request is issued to the model it runs to completion or network
	// failure, even if the client disconnects. Retrying is the client's call.
	story, err := s.Pipeline.Generate(s.Ctx, req.Prompt, params)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrSignedOut):
			return signInRequired(c)
		case errors.Is(err, pipeline.ErrQuotaExceeded):
			return quotaExhausted(c)
		}
		var genErr *inference.GenerationError
		if errors.As(err, &genErr) {
			log.Error("generation failed", "error", err)
			return generationFailed(c, genErr.Message)
		}
		log.Error("pipeline failure", "error", err)
		return generationFailed(c, "Failed to generate story")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"story":     story,
		"remaining": s.Ledger.Remaining(),
	})
}
