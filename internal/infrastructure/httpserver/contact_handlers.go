package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devillabs/cms-api/internal/core/domain/contact"
)

func (s *Server) submitContact(c echo.Context) error {
	var req contact.Request
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := s.contactSvc.Submit(c.Request().Context(), &req); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message. Please try again later.")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message sent successfully"})
}
