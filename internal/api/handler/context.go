package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/worklog/report-dashboard/internal/api/middleware"
	"github.com/worklog/report-dashboard/internal/core/domain"
)

// requestedBy returns the token subject set by the Auth middleware, or ""
// when the API runs without auth.
func requestedBy(c echo.Context) string {
	sub, _ := c.Get(middleware.ContextSubject).(string)
	return sub
}

// pathCategory resolves the :category path parameter.
func pathCategory(c echo.Context) (domain.Category, error) {
	return domain.ParseCategory(c.Param("category"))
}
