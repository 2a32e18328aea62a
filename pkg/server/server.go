package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fable/pkg/account"
	"fable/pkg/pipeline"
	"fable/pkg/story"
	"fable/pkg/utils"
)

type Server struct {
	Echo     *echo.Echo
	Pipeline *pipeline.Pipeline
	Ledger   *account.Ledger
	History  *story.History
	Auth     account.AuthProvider
	Payments account.PaymentProvider
	Ctx      context.Context
}

func NewServer(ctx context.Context, p *pipeline.Pipeline, auth account.AuthProvider, payments account.PaymentProvider) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:     e,
		Pipeline: p,
		Ledger:   p.Ledger,
		History:  p.History,
		Auth:     auth,
		Payments: payments,
		Ctx:      ctx,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")

	api.POST("/signup", s.handlePostSignup)
	api.POST("/login", s.handlePostLogin)
	api.POST("/logout", s.handlePostLogout)
	api.DELETE("/account", s.handleDeleteAccount)
	api.GET("/me", s.handleGetMe)
	api.POST("/plan", s.handlePostPlan)

	api.POST("/generate", s.handlePostGenerate)

	api.GET("/stories", s.handleGetStories)
	api.GET("/stories/:id", s.handleGetStory)
	api.DELETE("/stories/:id", s.handleDeleteStory)
	api.GET("/stories/:id/storyboard", s.handleGetStoryboard)
	api.GET("/stories/:id/download", s.handleGetDownload)
	api.GET("/export", s.handleGetExport)
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")

	saveErr := s.Ledger.Save()
	_ = s.History.Save()
	shutDownErr := s.Echo.Shutdown(ctx)
	if shutDownErr != nil {
		return shutDownErr
	}

	return saveErr
}
