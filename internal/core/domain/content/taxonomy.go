package content

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type Tag struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// Stats aggregates public counters shown on the landing page.
type Stats struct {
	TotalBlogs    int `json:"total_blogs" db:"total_blogs"`
	TotalProjects int `json:"total_projects" db:"total_projects"`
	TotalServices int `json:"total_services" db:"total_services"`
	TotalTools    int `json:"total_tools" db:"total_tools"`
	BlogViews     int `json:"blog_views" db:"blog_views"`
	ProjectViews  int `json:"project_views" db:"project_views"`
	TotalViews    int `json:"total_views" db:"total_views"`
}
