package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"fable/pkg/account"
	"fable/pkg/domain"
)

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handlePostSignup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	acct, err := s.Auth.SignUp(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.Ledger.SignIn(acct); err != nil {
		log.Error("failed to persist account", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save account")
	}
	return c.JSON(http.StatusOK, acct)
}

func (s *Server) handlePostLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	acct, err := s.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrMissingCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := s.Ledger.SignIn(acct); err != nil {
		log.Error("failed to persist account", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save account")
	}
	return c.JSON(http.StatusOK, acct)
}

func (s *Server) handlePostLogout(c echo.Context) error {
	if err := s.Ledger.SignOut(); err != nil {
		log.Error("failed to erase account", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to sign out")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// handleDeleteAccount erases the account record and every saved story.
// Local erasure only, there is nothing remote to revoke.
func (s *Server) handleDeleteAccount(c echo.Context) error {
	if _, ok := s.Ledger.Current(); !ok {
		return signInRequired(c)
	}
	if err := s.History.Clear(); err != nil {
		log.Error("failed to clear history", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete stories")
	}
	if err := s.Ledger.SignOut(); err != nil {
		log.Error("failed to erase account", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete account")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

type planReq struct {
	Plan string `json:"plan"`
}

func (s *Server) handlePostPlan(c echo.Context) error {
	var req planReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	tier := domain.PlanTier(req.Plan)
	if !tier.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown plan")
	}

	acct, ok := s.Ledger.Current()
	if !ok {
		return signInRequired(c)
	}
	if err := s.Payments.Charge(c.Request().Context(), acct.Email, tier); err != nil {
		log.Error("payment failed", "plan", tier, "error", err)
		return echo.NewHTTPError(http.StatusPaymentRequired, "payment failed")
	}

	updated, err := s.Ledger.ApplyPlan(tier)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update plan")
	}
	log.Info("plan updated", "plan", tier)
	return c.JSON(http.StatusOK, updated)
}
