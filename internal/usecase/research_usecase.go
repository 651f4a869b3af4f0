package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/fieldcodec"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type researchUsecase struct {
	researchRepo domain.ResearchRepository
	validate     *validator.Validate
}

func NewResearchUsecase(researchRepo domain.ResearchRepository, validate *validator.Validate) domain.ResearchUsecase {
	return &researchUsecase{researchRepo: researchRepo, validate: validate}
}

func (u *researchUsecase) ListPublic(ctx context.Context, lang domain.Language) ([]domain.ResearchView, error) {
	entries, err := u.researchRepo.Fetch(ctx, 0)
	if err != nil {
		return nil, err
	}
	views := []domain.ResearchView{}
	for i := range entries {
		views = append(views, entries[i].Localize(lang))
	}
	return views, nil
}

func (u *researchUsecase) List(ctx context.Context) ([]domain.Research, error) {
	return u.researchRepo.Fetch(ctx, 0)
}

func (u *researchUsecase) buildResearch(input *domain.ResearchInput) (*domain.Research, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	date, err := parseDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Research{
		Title:      input.Title,
		TitleJP:    input.TitleJP,
		Date:       date,
		Venue:      input.Venue,
		VenueJP:    input.VenueJP,
		Status:     input.Status,
		Abstract:   input.Abstract,
		AbstractJP: input.AbstractJP,
		PaperLink:  input.PaperLink,
		ImageURL:   input.ImageURL,
		Authors:    fieldcodec.SplitList(input.Authors),
		Keywords:   fieldcodec.SplitList(input.Keywords),
	}, nil
}

func (u *researchUsecase) Create(ctx context.Context, input *domain.ResearchInput) (*domain.Research, error) {
	research, err := u.buildResearch(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	research.ID = uuid.NewString()
	research.CreatedAt = now
	research.UpdatedAt = now

	if err := u.researchRepo.Create(ctx, research); err != nil {
		return nil, err
	}
	return research, nil
}

func (u *researchUsecase) Update(ctx context.Context, id string, input *domain.ResearchInput) (*domain.Research, error) {
	existing, err := u.researchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Research entry not found")
		}
		return nil, err
	}

	research, err := u.buildResearch(input)
	if err != nil {
		return nil, err
	}
	research.ID = existing.ID
	research.CreatedAt = existing.CreatedAt
	research.UpdatedAt = time.Now()

	if err := u.researchRepo.Update(ctx, research); err != nil {
		return nil, err
	}
	return research, nil
}

func (u *researchUsecase) Delete(ctx context.Context, id string) error {
	err := u.researchRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Research entry not found")
	}
	return err
}
