package domain

import (
	"context"
	"time"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Blog is a long-form post. The slug is the unique public lookup key;
// only published posts are visible outside the admin surface.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TitleJP     string    `json:"title_jp"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	ContentJP   string    `json:"content_jp"`
	Images      []string  `json:"images"`
	AudioURL    string    `json:"audio_url"`
	PublishDate time.Time `json:"publish_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogInput is the flattened admin form payload. Images arrive as
// comma-joined text and the publish date as YYYY-MM-DD.
type BlogInput struct {
	Title       string `json:"title" validate:"required"`
	TitleJP     string `json:"title_jp"`
	Slug        string `json:"slug" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Content     string `json:"content" validate:"required"`
	ContentJP   string `json:"content_jp"`
	Images      string `json:"images"`
	AudioURL    string `json:"audio_url"`
	PublishDate string `json:"publish_date" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=draft published"`
}

type BlogView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	Images      []string  `json:"images"`
	AudioURL    string    `json:"audio_url"`
	PublishDate time.Time `json:"publish_date"`
}

func (b *Blog) Localize(lang Language) BlogView {
	return BlogView{
		ID:          b.ID,
		Title:       lang.Resolve(b.Title, b.TitleJP),
		Slug:        b.Slug,
		Category:    b.Category,
		Content:     lang.Resolve(b.Content, b.ContentJP),
		Images:      b.Images,
		AudioURL:    b.AudioURL,
		PublishDate: b.PublishDate,
	}
}

type BlogRepository interface {
	// Fetch returns all posts for the admin list, publish_date descending.
	Fetch(ctx context.Context) ([]Blog, error)
	// FetchPublished returns published posts only, publish_date descending.
	FetchPublished(ctx context.Context) ([]Blog, error)
	// GetPublishedBySlug treats draft and missing slugs identically.
	GetPublishedBySlug(ctx context.Context, slug string) (*Blog, error)
	GetByID(ctx context.Context, id string) (*Blog, error)
	Create(ctx context.Context, blog *Blog) error
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id string) error
}

type BlogUsecase interface {
	ListPublished(ctx context.Context, lang Language) ([]BlogView, error)
	GetPublishedBySlug(ctx context.Context, slug string, lang Language) (*BlogView, error)
	List(ctx context.Context) ([]Blog, error)
	Create(ctx context.Context, input *BlogInput) (*Blog, error)
	Update(ctx context.Context, id string, input *BlogInput) (*Blog, error)
	Delete(ctx context.Context, id string) error
}
