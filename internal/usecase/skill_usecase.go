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

type skillUsecase struct {
	skillRepo domain.SkillRepository
	validate  *validator.Validate
}

func NewSkillUsecase(skillRepo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo, validate: validate}
}

// ListGrouped relies on the repository's category-then-order_index
// ordering, so grouping is a single pass.
func (u *skillUsecase) ListGrouped(ctx context.Context, lang domain.Language) ([]domain.SkillGroup, error) {
	skills, err := u.skillRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupSkills(skills, lang), nil
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx)
}

func (u *skillUsecase) buildSkill(input *domain.SkillInput) (*domain.Skill, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	return &domain.Skill{
		Name:        input.Name,
		NameJP:      input.NameJP,
		Category:    input.Category,
		Proficiency: input.Proficiency,
		OrderIndex:  input.OrderIndex,
	}, nil
}

func (u *skillUsecase) Create(ctx context.Context, input *domain.SkillInput) (*domain.Skill, error) {
	skill, err := u.buildSkill(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	skill.ID = uuid.NewString()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Update(ctx context.Context, id string, input *domain.SkillInput) (*domain.Skill, error) {
	existing, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}

	skill, err := u.buildSkill(input)
	if err != nil {
		return nil, err
	}
	skill.ID = existing.ID
	skill.CreatedAt = existing.CreatedAt
	skill.UpdatedAt = time.Now()

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id string) error {
	err := u.skillRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Skill not found")
	}
	return err
}
