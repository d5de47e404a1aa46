package content

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAuthor is used when a blog post is created without an author.
const DefaultAuthor = "Vicky Kumar"

type Blog struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Slug            string      `json:"slug" db:"slug"`
	Excerpt         string      `json:"excerpt" db:"excerpt"`
	Content         string      `json:"content" db:"content"`
	Author          string      `json:"author" db:"author"`
	FeaturedImage   string      `json:"featured_image" db:"featured_image"`
	ThumbnailImage  string      `json:"thumbnail_image" db:"thumbnail_image"`
	ReadTime        int         `json:"read_time" db:"read_time"`
	Views           int         `json:"views" db:"views"`
	Likes           int         `json:"likes" db:"likes"`
	MetaTitle       string      `json:"meta_title" db:"meta_title"`
	MetaDescription string      `json:"meta_description" db:"meta_description"`
	MetaKeywords    string      `json:"meta_keywords" db:"meta_keywords"`
	Published       bool        `json:"published" db:"published"`
	Featured        bool        `json:"featured" db:"featured"`
	CategoryID      *uuid.UUID  `json:"category_id" db:"category_id"`
	TagIDs          []uuid.UUID `json:"tag_ids" db:"-"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
	PublishedAt     *time.Time  `json:"published_at" db:"published_at"`
}

// MarkPublished stamps PublishedAt the first time a post goes live.
func (b *Blog) MarkPublished(now time.Time) {
	if b.Published && b.PublishedAt == nil {
		t := now.UTC()
		b.PublishedAt = &t
	}
}

type CreateBlogRequest struct {
	Title           string      `json:"title" validate:"required,min=1,max=200"`
	Excerpt         string      `json:"excerpt"`
	Content         string      `json:"content" validate:"required"`
	Author          string      `json:"author" validate:"max=100"`
	FeaturedImage   string      `json:"featured_image"`
	ThumbnailImage  string      `json:"thumbnail_image"`
	ReadTime        int         `json:"read_time" validate:"gte=0"`
	MetaTitle       string      `json:"meta_title" validate:"max=200"`
	MetaDescription string      `json:"meta_description" validate:"max=300"`
	MetaKeywords    string      `json:"meta_keywords" validate:"max=200"`
	Published       bool        `json:"published"`
	Featured        bool        `json:"featured"`
	CategoryID      *uuid.UUID  `json:"category_id"`
	TagIDs          []uuid.UUID `json:"tag_ids"`
}

// UpdateBlogRequest carries a partial update; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title           *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Excerpt         *string      `json:"excerpt"`
	Content         *string      `json:"content"`
	Author          *string      `json:"author" validate:"omitempty,max=100"`
	FeaturedImage   *string      `json:"featured_image"`
	ThumbnailImage  *string      `json:"thumbnail_image"`
	ReadTime        *int         `json:"read_time" validate:"omitempty,gte=0"`
	MetaTitle       *string      `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription *string      `json:"meta_description" validate:"omitempty,max=300"`
	MetaKeywords    *string      `json:"meta_keywords" validate:"omitempty,max=200"`
	Published       *bool        `json:"published"`
	Featured        *bool        `json:"featured"`
	CategoryID      *uuid.UUID   `json:"category_id"`
	TagIDs          *[]uuid.UUID `json:"tag_ids"`
}

// Apply copies the set fields onto b.
func (r *UpdateBlogRequest) Apply(b *Blog) {
	setString(&b.Title, r.Title)
	setString(&b.Excerpt, r.Excerpt)
	setString(&b.Content, r.Content)
	setString(&b.Author, r.Author)
	setString(&b.FeaturedImage, r.FeaturedImage)
	setString(&b.ThumbnailImage, r.ThumbnailImage)
	setString(&b.MetaTitle, r.MetaTitle)
	setString(&b.MetaDescription, r.MetaDescription)
	setString(&b.MetaKeywords, r.MetaKeywords)
	if r.ReadTime != nil {
		b.ReadTime = *r.ReadTime
	}
	if r.Published != nil {
		b.Published = *r.Published
	}
	if r.Featured != nil {
		b.Featured = *r.Featured
	}
	if r.CategoryID != nil {
		b.CategoryID = r.CategoryID
	}
	if r.TagIDs != nil {
		b.TagIDs = *r.TagIDs
	}
}

// BlogFilter narrows blog listings. Category and Tag match by slug.
type BlogFilter struct {
	Skip          int
	Limit         int
	Category      string
	Tag           string
	Search        string
	Featured      *bool
	PublishedOnly bool
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
