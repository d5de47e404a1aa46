package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const serviceName = "devillabs-cms-api"

func (s *Server) checkDependencies(ctx context.Context) (string, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	overall := "healthy"
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		if err := hc.Check(ctx); err != nil {
			deps[hc.Name()] = "unhealthy"
			overall = "degraded"
		} else {
			deps[hc.Name()] = "healthy"
		}
	}
	return overall, deps
}

func (s *Server) healthCheck(c echo.Context) error {
	overall, deps := s.checkDependencies(c.Request().Context())
	code := http.StatusOK
	if overall != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]interface{}{
		"status":       overall,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"version":      "1.0.0",
		"service":      serviceName,
		"dependencies": deps,
	})
}

// apiHealth is the frontend-facing probe; it always answers 200 and reports chat availability.
func (s *Server) apiHealth(c echo.Context) error {
	overall, deps := s.checkDependencies(c.Request().Context())
	chatConfigured := s.chatSvc != nil && s.chatSvc.Configured()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          overall,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"chat_configured": chatConfigured,
		"dependencies":    deps,
	})
}
