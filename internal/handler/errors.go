package handler

import (
	"errors"
	"guestpost-marketplace/internal/repository"
	"net/http"

	"github.com/labstack/echo/v4"
)

// mapError turns repository sentinels into HTTP errors and leaves
// everything else to echo's default 500 handling.
func mapError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return err
}
