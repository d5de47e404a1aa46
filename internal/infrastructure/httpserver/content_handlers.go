package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/helpers"
)

const maxListLimit = 100

func pageParams(c echo.Context) (skip, limit int, err error) {
	if skip, err = helpers.QueryInt(c, "skip", 0, 0, 1<<30); err != nil {
		return 0, 0, err
	}
	if limit, err = helpers.QueryInt(c, "limit", 10, 1, maxListLimit); err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func (s *Server) listBlogs(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	featured, err := helpers.QueryBool(c, "featured")
	if err != nil {
		return err
	}
	blogs, err := s.contentSvc.ListBlogs(c.Request().Context(), content.BlogFilter{
		Skip:     skip,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Search:   c.QueryParam("search"),
		Featured: featured,
	})
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, blogs)
}

func (s *Server) getBlog(c echo.Context) error {
	b, err := s.contentSvc.GetPublishedBlog(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Blog not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) likeBlog(c echo.Context) error {
	likes, err := s.contentSvc.LikeBlog(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Blog not found")
	}
	return c.JSON(http.StatusOK, map[string]int{"likes": likes})
}

func (s *Server) listProjects(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	featured, err := helpers.QueryBool(c, "featured")
	if err != nil {
		return err
	}
	projects, err := s.contentSvc.ListProjects(c.Request().Context(), content.ProjectFilter{
		Skip:     skip,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Status:   c.QueryParam("status"),
		Featured: featured,
	})
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) getProject(c echo.Context) error {
	p, err := s.contentSvc.GetPublishedProject(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Project not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) listServices(c echo.Context) error {
	activeOnly, err := helpers.QueryBool(c, "active_only")
	if err != nil {
		return err
	}
	featured, err := helpers.QueryBool(c, "featured")
	if err != nil {
		return err
	}
	f := content.ServiceFilter{ActiveOnly: true, Featured: featured}
	if activeOnly != nil {
		f.ActiveOnly = *activeOnly
	}
	out, err := s.contentSvc.ListServices(c.Request().Context(), f)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getService(c echo.Context) error {
	svc, err := s.contentSvc.GetActiveService(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Service not found")
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) listTools(c echo.Context) error {
	activeOnly, err := helpers.QueryBool(c, "active_only")
	if err != nil {
		return err
	}
	featured, err := helpers.QueryBool(c, "featured")
	if err != nil {
		return err
	}
	f := content.ToolFilter{Category: c.QueryParam("category"), ActiveOnly: true, Featured: featured}
	if activeOnly != nil {
		f.ActiveOnly = *activeOnly
	}
	out, err := s.contentSvc.ListTools(c.Request().Context(), f)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getTool(c echo.Context) error {
	t, err := s.contentSvc.GetActiveTool(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Tool not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) clickTool(c echo.Context) error {
	clicks, err := s.contentSvc.ClickTool(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Tool not found")
	}
	return c.JSON(http.StatusOK, map[string]int{"clicks": clicks})
}

func (s *Server) listCategories(c echo.Context) error {
	out, err := s.contentSvc.ListCategories(c.Request().Context())
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) listTags(c echo.Context) error {
	out, err := s.contentSvc.ListTags(c.Request().Context())
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getStats(c echo.Context) error {
	st, err := s.contentSvc.Stats(c.Request().Context())
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, st)
}
