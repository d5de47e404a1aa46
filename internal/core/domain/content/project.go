package content

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

type Project struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	Title           string        `json:"title" db:"title"`
	Slug            string        `json:"slug" db:"slug"`
	Description     string        `json:"description" db:"description"`
	LongDescription string        `json:"long_description" db:"long_description"`
	FeaturedImage   string        `json:"featured_image" db:"featured_image"`
	ThumbnailImage  string        `json:"thumbnail_image" db:"thumbnail_image"`
	DemoVideoURL    string        `json:"demo_video_url" db:"demo_video_url"`
	GalleryImages   string        `json:"gallery_images" db:"gallery_images"`
	DemoURL         string        `json:"demo_url" db:"demo_url"`
	GithubURL       string        `json:"github_url" db:"github_url"`
	LiveURL         string        `json:"live_url" db:"live_url"`
	TechStack       string        `json:"tech_stack" db:"tech_stack"`
	Client          string        `json:"client" db:"client"`
	Duration        string        `json:"duration" db:"duration"`
	TeamSize        int           `json:"team_size" db:"team_size"`
	Stars           int           `json:"stars" db:"stars"`
	Forks           int           `json:"forks" db:"forks"`
	Views           int           `json:"views" db:"views"`
	Published       bool          `json:"published" db:"published"`
	Featured        bool          `json:"featured" db:"featured"`
	Status          ProjectStatus `json:"status" db:"status"`
	CategoryID      *uuid.UUID    `json:"category_id" db:"category_id"`
	TagIDs          []uuid.UUID   `json:"tag_ids" db:"-"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
	CompletedAt     *time.Time    `json:"completed_at" db:"completed_at"`
}

type CreateProjectRequest struct {
	Title           string        `json:"title" validate:"required,min=1,max=200"`
	Description     string        `json:"description" validate:"required"`
	LongDescription string        `json:"long_description"`
	FeaturedImage   string        `json:"featured_image"`
	ThumbnailImage  string        `json:"thumbnail_image"`
	DemoVideoURL    string        `json:"demo_video_url"`
	GalleryImages   string        `json:"gallery_images"`
	DemoURL         string        `json:"demo_url"`
	GithubURL       string        `json:"github_url"`
	LiveURL         string        `json:"live_url"`
	TechStack       string        `json:"tech_stack"`
	Client          string        `json:"client" validate:"max=200"`
	Duration        string        `json:"duration" validate:"max=100"`
	TeamSize        int           `json:"team_size" validate:"gte=0"`
	Published       bool          `json:"published"`
	Featured        bool          `json:"featured"`
	Status          ProjectStatus `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	CategoryID      *uuid.UUID    `json:"category_id"`
	TagIDs          []uuid.UUID   `json:"tag_ids"`
	CompletedAt     *time.Time    `json:"completed_at"`
}

type UpdateProjectRequest struct {
	Title           *string        `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string        `json:"description"`
	LongDescription *string        `json:"long_description"`
	FeaturedImage   *string        `json:"featured_image"`
	ThumbnailImage  *string        `json:"thumbnail_image"`
	DemoVideoURL    *string        `json:"demo_video_url"`
	GalleryImages   *string        `json:"gallery_images"`
	DemoURL         *string        `json:"demo_url"`
	GithubURL       *string        `json:"github_url"`
	LiveURL         *string        `json:"live_url"`
	TechStack       *string        `json:"tech_stack"`
	Client          *string        `json:"client" validate:"omitempty,max=200"`
	Duration        *string        `json:"duration" validate:"omitempty,max=100"`
	TeamSize        *int           `json:"team_size" validate:"omitempty,gte=0"`
	Stars           *int           `json:"stars" validate:"omitempty,gte=0"`
	Forks           *int           `json:"forks" validate:"omitempty,gte=0"`
	Published       *bool          `json:"published"`
	Featured        *bool          `json:"featured"`
	Status          *ProjectStatus `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	CategoryID      *uuid.UUID     `json:"category_id"`
	TagIDs          *[]uuid.UUID   `json:"tag_ids"`
	CompletedAt     *time.Time     `json:"completed_at"`
}

func (r *UpdateProjectRequest) Apply(p *Project) {
	setString(&p.Title, r.Title)
	setString(&p.Description, r.Description)
	setString(&p.LongDescription, r.LongDescription)
	setString(&p.FeaturedImage, r.FeaturedImage)
	setString(&p.ThumbnailImage, r.ThumbnailImage)
	setString(&p.DemoVideoURL, r.DemoVideoURL)
	setString(&p.GalleryImages, r.GalleryImages)
	setString(&p.DemoURL, r.DemoURL)
	setString(&p.GithubURL, r.GithubURL)
	setString(&p.LiveURL, r.LiveURL)
	setString(&p.TechStack, r.TechStack)
	setString(&p.Client, r.Client)
	setString(&p.Duration, r.Duration)
	if r.TeamSize != nil {
		p.TeamSize = *r.TeamSize
	}
	if r.Stars != nil {
		p.Stars = *r.Stars
	}
	if r.Forks != nil {
		p.Forks = *r.Forks
	}
	if r.Published != nil {
		p.Published = *r.Published
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.CategoryID != nil {
		p.CategoryID = r.CategoryID
	}
	if r.TagIDs != nil {
		p.TagIDs = *r.TagIDs
	}
	if r.CompletedAt != nil {
		p.CompletedAt = r.CompletedAt
	}
}

type ProjectFilter struct {
	Skip          int
	Limit         int
	Category      string
	Tag           string
	Status        string
	Featured      *bool
	PublishedOnly bool
}
