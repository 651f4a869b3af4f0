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

type achievementUsecase struct {
	achievementRepo domain.AchievementRepository
	validate        *validator.Validate
}

func NewAchievementUsecase(achievementRepo domain.AchievementRepository, validate *validator.Validate) domain.AchievementUsecase {
	return &achievementUsecase{achievementRepo: achievementRepo, validate: validate}
}

func (u *achievementUsecase) ListPublic(ctx context.Context, lang domain.Language) ([]domain.AchievementView, error) {
	achievements, err := u.achievementRepo.Fetch(ctx, 0)
	if err != nil {
		return nil, err
	}
	views := []domain.AchievementView{}
	for i := range achievements {
		views = append(views, achievements[i].Localize(lang))
	}
	return views, nil
}

func (u *achievementUsecase) List(ctx context.Context) ([]domain.Achievement, error) {
	return u.achievementRepo.Fetch(ctx, 0)
}

func (u *achievementUsecase) buildAchievement(input *domain.AchievementInput) (*domain.Achievement, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	date, err := parseDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Achievement{
		Title:         input.Title,
		TitleJP:       input.TitleJP,
		Description:   input.Description,
		DescriptionJP: input.DescriptionJP,
		Date:          date,
		Image:         input.Image,
	}, nil
}

func (u *achievementUsecase) Create(ctx context.Context, input *domain.AchievementInput) (*domain.Achievement, error) {
	achievement, err := u.buildAchievement(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	achievement.ID = uuid.NewString()
	achievement.CreatedAt = now
	achievement.UpdatedAt = now

	if err := u.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (u *achievementUsecase) Update(ctx context.Context, id string, input *domain.AchievementInput) (*domain.Achievement, error) {
	existing, err := u.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Achievement not found")
		}
		return nil, err
	}

	achievement, err := u.buildAchievement(input)
	if err != nil {
		return nil, err
	}
	achievement.ID = existing.ID
	achievement.CreatedAt = existing.CreatedAt
	achievement.UpdatedAt = time.Now()

	if err := u.achievementRepo.Update(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (u *achievementUsecase) Delete(ctx context.Context, id string) error {
	err := u.achievementRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Achievement not found")
	}
	return err
}
