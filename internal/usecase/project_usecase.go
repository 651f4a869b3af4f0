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

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	validate    *validator.Validate
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo, validate: validate}
}

func (u *projectUsecase) ListPublic(ctx context.Context, lang domain.Language) ([]domain.ProjectView, error) {
	projects, err := u.projectRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	views := []domain.ProjectView{}
	for i := range projects {
		views = append(views, projects[i].Localize(lang))
	}
	return views, nil
}

func (u *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	return u.projectRepo.Fetch(ctx)
}

func (u *projectUsecase) buildProject(input *domain.ProjectInput) (*domain.Project, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	return &domain.Project{
		Title:         input.Title,
		TitleJP:       input.TitleJP,
		Description:   input.Description,
		DescriptionJP: input.DescriptionJP,
		Images:        fieldcodec.SplitList(input.Images),
		TechStack:     fieldcodec.SplitList(input.TechStack),
		ProjectLink:   input.ProjectLink,
		GithubLink:    input.GithubLink,
		Date:          input.Date,
		OrderIndex:    input.OrderIndex,
	}, nil
}

func (u *projectUsecase) Create(ctx context.Context, input *domain.ProjectInput) (*domain.Project, error) {
	project, err := u.buildProject(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Update(ctx context.Context, id string, input *domain.ProjectInput) (*domain.Project, error) {
	existing, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}

	project, err := u.buildProject(input)
	if err != nil {
		return nil, err
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now()

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Delete(ctx context.Context, id string) error {
	err := u.projectRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Project not found")
	}
	return err
}
