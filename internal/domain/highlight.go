package domain

import (
	"context"
	"time"
)

// Highlight is a homepage teaser card, newest first, limited count.
type Highlight struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleJP       string    `json:"title_jp"`
	Description   string    `json:"description"`
	DescriptionJP string    `json:"description_jp"`
	ImageURL      string    `json:"image_url"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HighlightInput struct {
	Title         string `json:"title" validate:"required"`
	TitleJP       string `json:"title_jp"`
	Description   string `json:"description" validate:"required"`
	DescriptionJP string `json:"description_jp"`
	ImageURL      string `json:"image_url"`
	Date          string `json:"date" validate:"required"`
}

type HighlightView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Date        time.Time `json:"date"`
}

func (h *Highlight) Localize(lang Language) HighlightView {
	return HighlightView{
		ID:          h.ID,
		Title:       lang.Resolve(h.Title, h.TitleJP),
		Description: lang.Resolve(h.Description, h.DescriptionJP),
		ImageURL:    h.ImageURL,
		Date:        h.Date,
	}
}

type HighlightRepository interface {
	Fetch(ctx context.Context, limit int) ([]Highlight, error)
	GetByID(ctx context.Context, id string) (*Highlight, error)
	Create(ctx context.Context, highlight *Highlight) error
	Update(ctx context.Context, highlight *Highlight) error
	Delete(ctx context.Context, id string) error
}

type HighlightUsecase interface {
	ListPublic(ctx context.Context, lang Language) ([]HighlightView, error)
	List(ctx context.Context) ([]Highlight, error)
	Create(ctx context.Context, input *HighlightInput) (*Highlight, error)
	Update(ctx context.Context, id string, input *HighlightInput) (*Highlight, error)
	Delete(ctx context.Context, id string) error
}
