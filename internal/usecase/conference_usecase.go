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

type conferenceUsecase struct {
	conferenceRepo domain.ConferenceRepository
	validate       *validator.Validate
}

func NewConferenceUsecase(conferenceRepo domain.ConferenceRepository, validate *validator.Validate) domain.ConferenceUsecase {
	return &conferenceUsecase{conferenceRepo: conferenceRepo, validate: validate}
}

func (u *conferenceUsecase) ListPublic(ctx context.Context, lang domain.Language) ([]domain.ConferenceView, error) {
	conferences, err := u.conferenceRepo.Fetch(ctx, 0)
	if err != nil {
		return nil, err
	}
	views := []domain.ConferenceView{}
	for i := range conferences {
		views = append(views, conferences[i].Localize(lang))
	}
	return views, nil
}

func (u *conferenceUsecase) List(ctx context.Context) ([]domain.Conference, error) {
	return u.conferenceRepo.Fetch(ctx, 0)
}

func (u *conferenceUsecase) buildConference(input *domain.ConferenceInput) (*domain.Conference, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	date, err := parseDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Conference{
		Title:         input.Title,
		TitleJP:       input.TitleJP,
		Description:   input.Description,
		DescriptionJP: input.DescriptionJP,
		Date:          date,
		Location:      input.Location,
		Images:        fieldcodec.SplitList(input.Images),
	}, nil
}

func (u *conferenceUsecase) Create(ctx context.Context, input *domain.ConferenceInput) (*domain.Conference, error) {
	conference, err := u.buildConference(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	conference.ID = uuid.NewString()
	conference.CreatedAt = now
	conference.UpdatedAt = now

	if err := u.conferenceRepo.Create(ctx, conference); err != nil {
		return nil, err
	}
	return conference, nil
}

func (u *conferenceUsecase) Update(ctx context.Context, id string, input *domain.ConferenceInput) (*domain.Conference, error) {
	existing, err := u.conferenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Conference not found")
		}
		return nil, err
	}

	conference, err := u.buildConference(input)
	if err != nil {
		return nil, err
	}
	conference.ID = existing.ID
	conference.CreatedAt = existing.CreatedAt
	conference.UpdatedAt = time.Now()

	if err := u.conferenceRepo.Update(ctx, conference); err != nil {
		return nil, err
	}
	return conference, nil
}

func (u *conferenceUsecase) Delete(ctx context.Context, id string) error {
	err := u.conferenceRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Conference not found")
	}
	return err
}
