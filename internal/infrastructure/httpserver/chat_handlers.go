package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devillabs/cms-api/internal/core/domain/chat"
)

func (s *Server) chat(c echo.Context) error {
	var req chat.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		if req.Message == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Message cannot be empty")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.chatSvc.Reply(c.Request().Context(), &req)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, "Message cannot be empty")
	case err != nil:
		if s.logger != nil {
			s.logger.WithError(err).Error("chat reply failed")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Sorry, I encountered an error. Please try again.")
	}
	return c.JSON(http.StatusOK, resp)
}
