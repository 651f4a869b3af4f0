package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type highlightUsecase struct {
	highlightRepo domain.HighlightRepository
	validate      *validator.Validate
}

func NewHighlightUsecase(highlightRepo domain.HighlightRepository, validate *validator.Validate) domain.HighlightUsecase {
	return &highlightUsecase{highlightRepo: highlightRepo, validate: validate}
}

func (u *highlightUsecase) ListPublic(ctx context.Context, lang domain.Language) ([]domain.HighlightView, error) {
	highlights, err := u.highlightRepo.Fetch(ctx, 0)
	if err != nil {
		return nil, err
	}
	views := []domain.HighlightView{}
	for i := range highlights {
		views = append(views, highlights[i].Localize(lang))
	}
	return views, nil
}

func (u *highlightUsecase) List(ctx context.Context) ([]domain.Highlight, error) {
	return u.highlightRepo.Fetch(ctx, 0)
}

func (u *highlightUsecase) buildHighlight(input *domain.HighlightInput) (*domain.Highlight, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	date, err := parseDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Highlight{
		Title:         input.Title,
		TitleJP:       input.TitleJP,
		Description:   input.Description,
		DescriptionJP: input.DescriptionJP,
		ImageURL:      input.ImageURL,
		Date:          date,
	}, nil
}

func (u *highlightUsecase) Create(ctx context.Context, input *domain.HighlightInput) (*domain.Highlight, error) {
	highlight, err := u.buildHighlight(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	highlight.ID = uuid.NewString()
	highlight.CreatedAt = now
	highlight.UpdatedAt = now

	if err := u.highlightRepo.Create(ctx, highlight); err != nil {
		return nil, err
	}
	return highlight, nil
}

func (u *highlightUsecase) Update(ctx context.Context, id string, input *domain.HighlightInput) (*domain.Highlight, error) {
	existing, err := u.highlightRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Highlight not found")
		}
		return nil, err
	}

	highlight, err := u.buildHighlight(input)
	if err != nil {
		return nil, err
	}
	highlight.ID = existing.ID
	highlight.CreatedAt = existing.CreatedAt
	highlight.UpdatedAt = time.Now()

	if err := u.highlightRepo.Update(ctx, highlight); err != nil {
		return nil, err
	}
	return highlight, nil
}

func (u *highlightUsecase) Delete(ctx context.Context, id string) error {
	err := u.highlightRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Highlight not found")
	}
	return err
}
