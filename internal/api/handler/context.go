package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// ctxCaller extracts the authenticated caller injected by the Auth middleware
// and performs a fast-fail check before any service call: both the subject id
// and a known role must be present (presence proves the middleware ran and
// the token carried a usable identity).
func ctxCaller(c echo.Context) (domain.Caller, error) {
	sub, _ := c.Get("sub").(string)
	role, _ := c.Get("role").(domain.Role)
	if sub == "" || !role.Valid() {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Caller{ID: sub, Role: role}, nil
}
