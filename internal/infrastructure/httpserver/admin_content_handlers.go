package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devillabs/cms-api/internal/core/domain/content"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/helpers"
)

func (s *Server) adminListBlogs(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	out, err := s.adminSvc.ListAllBlogs(c.Request().Context(), skip, limit)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) adminGetBlog(c echo.Context) error {
	b, err := s.adminSvc.GetBlog(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Blog not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) adminCreateBlog(c echo.Context) error {
	var req content.CreateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	b, err := s.adminSvc.CreateBlog(c.Request().Context(), &req)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusCreated, b)
}

func (s *Server) adminUpdateBlog(c echo.Context) error {
	var req content.UpdateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	b, err := s.adminSvc.UpdateBlog(c.Request().Context(), c.Param("slug"), &req)
	if err != nil {
		return s.contentError(c, err, "Blog not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) adminDeleteBlog(c echo.Context) error {
	if err := s.adminSvc.DeleteBlog(c.Request().Context(), c.Param("slug")); err != nil {
		return s.contentError(c, err, "Blog not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

func (s *Server) adminListProjects(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	out, err := s.adminSvc.ListAllProjects(c.Request().Context(), skip, limit)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) adminGetProject(c echo.Context) error {
	p, err := s.adminSvc.GetProject(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Project not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) adminCreateProject(c echo.Context) error {
	var req content.CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := s.adminSvc.CreateProject(c.Request().Context(), &req)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) adminUpdateProject(c echo.Context) error {
	var req content.UpdateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := s.adminSvc.UpdateProject(c.Request().Context(), c.Param("slug"), &req)
	if err != nil {
		return s.contentError(c, err, "Project not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) adminDeleteProject(c echo.Context) error {
	if err := s.adminSvc.DeleteProject(c.Request().Context(), c.Param("slug")); err != nil {
		return s.contentError(c, err, "Project not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (s *Server) adminListServices(c echo.Context) error {
	out, err := s.adminSvc.ListAllServices(c.Request().Context())
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) adminGetService(c echo.Context) error {
	svc, err := s.adminSvc.GetService(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return s.contentError(c, err, "Service not found")
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) adminCreateService(c echo.Context) error {
	var req content.CreateServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := s.adminSvc.CreateService(c.Request().Context(), &req)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusCreated, svc)
}

func (s *Server) adminUpdateService(c echo.Context) error {
	var req content.UpdateServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := s.adminSvc.UpdateService(c.Request().Context(), c.Param("slug"), &req)
	if err != nil {
		return s.contentError(c, err, "Service not found")
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) adminDeleteService(c echo.Context) error {
	if err := s.adminSvc.DeleteService(c.Request().Context(), c.Param("slug")); err != nil {
		return s.contentError(c, err, "Service not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}

func (s *Server) adminCreateTool(c echo.Context) error {
	var req content.CreateToolRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := s.adminSvc.CreateTool(c.Request().Context(), &req)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusCreated, t)
}

func (s *Server) adminUpdateTool(c echo.Context) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req content.UpdateToolRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := s.adminSvc.UpdateTool(c.Request().Context(), id, &req)
	if err != nil {
		return s.contentError(c, err, "Tool not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) adminDeleteTool(c echo.Context) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.adminSvc.DeleteTool(c.Request().Context(), id); err != nil {
		return s.contentError(c, err, "Tool not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tool deleted successfully"})
}

func (s *Server) adminCreateCategory(c echo.Context) error {
	var req content.CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := s.adminSvc.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusCreated, cat)
}

func (s *Server) adminDeleteCategory(c echo.Context) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.adminSvc.DeleteCategory(c.Request().Context(), id); err != nil {
		return s.contentError(c, err, "Category not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

func (s *Server) adminCreateTag(c echo.Context) error {
	var req content.CreateTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tag, err := s.adminSvc.CreateTag(c.Request().Context(), &req)
	if err != nil {
		return s.contentError(c, err, "")
	}
	return c.JSON(http.StatusCreated, tag)
}

func (s *Server) adminDeleteTag(c echo.Context) error {
	id, err := helpers.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := s.adminSvc.DeleteTag(c.Request().Context(), id); err != nil {
		return s.contentError(c, err, "Tag not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tag deleted successfully"})
}
