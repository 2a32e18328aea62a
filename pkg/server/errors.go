package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fable/pkg/utils"
)

// Pre-flight failures carry distinct codes so a client can show the right
// dialog (sign-in vs upgrade) instead of a generic error.
func signInRequired(c echo.Context) error {
	body := utils.ErrJSON("You need to sign in to generate stories")
	body["code"] = "sign_in_required"
	return c.JSON(http.StatusUnauthorized, body)
}

func quotaExhausted(c echo.Context) error {
	body := utils.ErrJSON("You have reached your daily story limit")
	body["code"] = "quota_exhausted"
	return c.JSON(http.StatusPaymentRequired, body)
}

// Generation failures are uniformly retryable from the client's side.
func generationFailed(c echo.Context, msg string) error {
	body := utils.ErrJSON(msg)
	body["code"] = "generation_failed"
	body["retryable"] = true
	return c.JSON(http.StatusBadGateway, body)
}
