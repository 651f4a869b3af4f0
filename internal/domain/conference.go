package domain

import (
	"context"
	"time"
)

type Conference struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleJP       string    `json:"title_jp"`
	Description   string    `json:"description"`
	DescriptionJP string    `json:"description_jp"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ConferenceInput struct {
	Title         string `json:"title" validate:"required"`
	TitleJP       string `json:"title_jp"`
	Description   string `json:"description"`
	DescriptionJP string `json:"description_jp"`
	Date          string `json:"date" validate:"required"`
	Location      string `json:"location"`
	Images        string `json:"images"`
}

type ConferenceView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
}

func (c *Conference) Localize(lang Language) ConferenceView {
	return ConferenceView{
		ID:          c.ID,
		Title:       lang.Resolve(c.Title, c.TitleJP),
		Description: lang.Resolve(c.Description, c.DescriptionJP),
		Date:        c.Date,
		Location:    c.Location,
		Images:      c.Images,
	}
}

type ConferenceRepository interface {
	Fetch(ctx context.Context, limit int) ([]Conference, error)
	GetByID(ctx context.Context, id string) (*Conference, error)
	Create(ctx context.Context, conference *Conference) error
	Update(ctx context.Context, conference *Conference) error
	Delete(ctx context.Context, id string) error
}

type ConferenceUsecase interface {
	ListPublic(ctx context.Context, lang Language) ([]ConferenceView, error)
	List(ctx context.Context) ([]Conference, error)
	Create(ctx context.Context, input *ConferenceInput) (*Conference, error)
	Update(ctx context.Context, id string, input *ConferenceInput) (*Conference, error)
	Delete(ctx context.Context, id string) error
}
