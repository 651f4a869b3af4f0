package domain

import (
	"context"
	"time"
)

type Achievement struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleJP       string    `json:"title_jp"`
	Description   string    `json:"description"`
	DescriptionJP string    `json:"description_jp"`
	Date          time.Time `json:"date"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AchievementInput struct {
	Title         string `json:"title" validate:"required"`
	TitleJP       string `json:"title_jp"`
	Description   string `json:"description" validate:"required"`
	DescriptionJP string `json:"description_jp"`
	Date          string `json:"date" validate:"required"`
	Image         string `json:"image"`
}

type AchievementView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Image       string    `json:"image"`
}

func (a *Achievement) Localize(lang Language) AchievementView {
	return AchievementView{
		ID:          a.ID,
		Title:       lang.Resolve(a.Title, a.TitleJP),
		Description: lang.Resolve(a.Description, a.DescriptionJP),
		Date:        a.Date,
		Image:       a.Image,
	}
}

type AchievementRepository interface {
	Fetch(ctx context.Context, limit int) ([]Achievement, error)
	GetByID(ctx context.Context, id string) (*Achievement, error)
	Create(ctx context.Context, achievement *Achievement) error
	Update(ctx context.Context, achievement *Achievement) error
	Delete(ctx context.Context, id string) error
}

type AchievementUsecase interface {
	ListPublic(ctx context.Context, lang Language) ([]AchievementView, error)
	List(ctx context.Context) ([]Achievement, error)
	Create(ctx context.Context, input *AchievementInput) (*Achievement, error)
	Update(ctx context.Context, id string, input *AchievementInput) (*Achievement, error)
	Delete(ctx context.Context, id string) error
}
