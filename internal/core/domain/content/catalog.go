package content

import (
	"time"

	"github.com/google/uuid"
)

// Service is a consulting offering listed on the site.
type Service struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Description     string    `json:"description" db:"description"`
	LongDescription string    `json:"long_description" db:"long_description"`
	Price           *float64  `json:"price" db:"price"`
	PriceRange      string    `json:"price_range" db:"price_range"`
	Currency        string    `json:"currency" db:"currency"`
	PricingModel    string    `json:"pricing_model" db:"pricing_model"`
	Icon            string    `json:"icon" db:"icon"`
	FeaturedImage   string    `json:"featured_image" db:"featured_image"`
	Features        string    `json:"features" db:"features"`
	Deliverables    string    `json:"deliverables" db:"deliverables"`
	Duration        string    `json:"duration" db:"duration"`
	MetaTitle       string    `json:"meta_title" db:"meta_title"`
	MetaDescription string    `json:"meta_description" db:"meta_description"`
	Active          bool      `json:"active" db:"active"`
	Featured        bool      `json:"featured" db:"featured"`
	SortOrder       int       `json:"order" db:"sort_order"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type CreateServiceRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"long_description"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	PriceRange      string   `json:"price_range" validate:"max=100"`
	Currency        string   `json:"currency" validate:"omitempty,len=3"`
	PricingModel    string   `json:"pricing_model" validate:"max=50"`
	Icon            string   `json:"icon"`
	FeaturedImage   string   `json:"featured_image"`
	Features        string   `json:"features"`
	Deliverables    string   `json:"deliverables"`
	Duration        string   `json:"duration" validate:"max=100"`
	MetaTitle       string   `json:"meta_title" validate:"max=200"`
	MetaDescription string   `json:"meta_description" validate:"max=300"`
	Active          *bool    `json:"active"`
	Featured        bool     `json:"featured"`
	SortOrder       int      `json:"order"`
}

type UpdateServiceRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"long_description"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	PriceRange      *string  `json:"price_range" validate:"omitempty,max=100"`
	Currency        *string  `json:"currency" validate:"omitempty,len=3"`
	PricingModel    *string  `json:"pricing_model" validate:"omitempty,max=50"`
	Icon            *string  `json:"icon"`
	FeaturedImage   *string  `json:"featured_image"`
	Features        *string  `json:"features"`
	Deliverables    *string  `json:"deliverables"`
	Duration        *string  `json:"duration" validate:"omitempty,max=100"`
	MetaTitle       *string  `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription *string  `json:"meta_description" validate:"omitempty,max=300"`
	Active          *bool    `json:"active"`
	Featured        *bool    `json:"featured"`
	SortOrder       *int     `json:"order"`
}

func (r *UpdateServiceRequest) Apply(s *Service) {
	setString(&s.Title, r.Title)
	setString(&s.Description, r.Description)
	setString(&s.LongDescription, r.LongDescription)
	setString(&s.PriceRange, r.PriceRange)
	setString(&s.Currency, r.Currency)
	setString(&s.PricingModel, r.PricingModel)
	setString(&s.Icon, r.Icon)
	setString(&s.FeaturedImage, r.FeaturedImage)
	setString(&s.Features, r.Features)
	setString(&s.Deliverables, r.Deliverables)
	setString(&s.Duration, r.Duration)
	setString(&s.MetaTitle, r.MetaTitle)
	setString(&s.MetaDescription, r.MetaDescription)
	if r.Price != nil {
		s.Price = r.Price
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	if r.Featured != nil {
		s.Featured = *r.Featured
	}
	if r.SortOrder != nil {
		s.SortOrder = *r.SortOrder
	}
}

type ServiceFilter struct {
	ActiveOnly bool
	Featured   *bool
}

// Tool is a product or utility showcased in the tools directory.
type Tool struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Slug            string    `json:"slug" db:"slug"`
	Description     string    `json:"description" db:"description"`
	LongDescription string    `json:"long_description" db:"long_description"`
	Logo            string    `json:"logo" db:"logo"`
	Icon            string    `json:"icon" db:"icon"`
	Screenshot      string    `json:"screenshot" db:"screenshot"`
	WebsiteURL      string    `json:"website_url" db:"website_url"`
	DemoURL         string    `json:"demo_url" db:"demo_url"`
	GithubURL       string    `json:"github_url" db:"github_url"`
	Category        string    `json:"category" db:"category"`
	TechStack       string    `json:"tech_stack" db:"tech_stack"`
	Features        string    `json:"features" db:"features"`
	Pricing         string    `json:"pricing" db:"pricing"`
	Price           *float64  `json:"price" db:"price"`
	Views           int       `json:"views" db:"views"`
	Clicks          int       `json:"clicks" db:"clicks"`
	Active          bool      `json:"active" db:"active"`
	Featured        bool      `json:"featured" db:"featured"`
	SortOrder       int       `json:"order" db:"sort_order"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type CreateToolRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=100"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"long_description"`
	Logo            string   `json:"logo"`
	Icon            string   `json:"icon"`
	Screenshot      string   `json:"screenshot"`
	WebsiteURL      string   `json:"website_url" validate:"omitempty,url"`
	DemoURL         string   `json:"demo_url" validate:"omitempty,url"`
	GithubURL       string   `json:"github_url" validate:"omitempty,url"`
	Category        string   `json:"category" validate:"max=100"`
	TechStack       string   `json:"tech_stack"`
	Features        string   `json:"features"`
	Pricing         string   `json:"pricing" validate:"max=50"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	Active          *bool    `json:"active"`
	Featured        bool     `json:"featured"`
	SortOrder       int      `json:"order"`
}

type UpdateToolRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"long_description"`
	Logo            *string  `json:"logo"`
	Icon            *string  `json:"icon"`
	Screenshot      *string  `json:"screenshot"`
	WebsiteURL      *string  `json:"website_url" validate:"omitempty,url"`
	DemoURL         *string  `json:"demo_url" validate:"omitempty,url"`
	GithubURL       *string  `json:"github_url" validate:"omitempty,url"`
	Category        *string  `json:"category" validate:"omitempty,max=100"`
	TechStack       *string  `json:"tech_stack"`
	Features        *string  `json:"features"`
	Pricing         *string  `json:"pricing" validate:"omitempty,max=50"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	Active          *bool    `json:"active"`
	Featured        *bool    `json:"featured"`
	SortOrder       *int     `json:"order"`
}

func (r *UpdateToolRequest) Apply(t *Tool) {
	setString(&t.Name, r.Name)
	setString(&t.Description, r.Description)
	setString(&t.LongDescription, r.LongDescription)
	setString(&t.Logo, r.Logo)
	setString(&t.Icon, r.Icon)
	setString(&t.Screenshot, r.Screenshot)
	setString(&t.WebsiteURL, r.WebsiteURL)
	setString(&t.DemoURL, r.DemoURL)
	setString(&t.GithubURL, r.GithubURL)
	setString(&t.Category, r.Category)
	setString(&t.TechStack, r.TechStack)
	setString(&t.Features, r.Features)
	setString(&t.Pricing, r.Pricing)
	if r.Price != nil {
		t.Price = r.Price
	}
	if r.Active != nil {
		t.Active = *r.Active
	}
	if r.Featured != nil {
		t.Featured = *r.Featured
	}
	if r.SortOrder != nil {
		t.SortOrder = *r.SortOrder
	}
}

type ToolFilter struct {
	Category   string
	ActiveOnly bool
	Featured   *bool
}
