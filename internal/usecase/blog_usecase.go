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

type blogUsecase struct {
	blogRepo domain.BlogRepository
	validate *validator.Validate
}

func NewBlogUsecase(blogRepo domain.BlogRepository, validate *validator.Validate) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo, validate: validate}
}

func (u *blogUsecase) ListPublished(ctx context.Context, lang domain.Language) ([]domain.BlogView, error) {
	blogs, err := u.blogRepo.FetchPublished(ctx)
	if err != nil {
		return nil, err
	}
	views := []domain.BlogView{}
	for i := range blogs {
		views = append(views, blogs[i].Localize(lang))
	}
	return views, nil
}

// GetPublishedBySlug never reveals drafts: the repository filter makes a
// draft slug the same 404 as an unknown one.
func (u *blogUsecase) GetPublishedBySlug(ctx context.Context, slug string, lang domain.Language) (*domain.BlogView, error) {
	blog, err := u.blogRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}
	view := blog.Localize(lang)
	return &view, nil
}

func (u *blogUsecase) List(ctx context.Context) ([]domain.Blog, error) {
	return u.blogRepo.Fetch(ctx)
}

func (u *blogUsecase) buildBlog(input *domain.BlogInput) (*domain.Blog, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	publishDate, err := parseDate("publish_date", input.PublishDate)
	if err != nil {
		return nil, err
	}
	return &domain.Blog{
		Title:       input.Title,
		TitleJP:     input.TitleJP,
		Slug:        input.Slug,
		Category:    input.Category,
		Content:     input.Content,
		ContentJP:   input.ContentJP,
		Images:      fieldcodec.SplitList(input.Images),
		AudioURL:    input.AudioURL,
		PublishDate: publishDate,
		Status:      input.Status,
	}, nil
}

func (u *blogUsecase) Create(ctx context.Context, input *domain.BlogInput) (*domain.Blog, error) {
	blog, err := u.buildBlog(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	blog.ID = uuid.NewString()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	if err := u.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (u *blogUsecase) Update(ctx context.Context, id string, input *domain.BlogInput) (*domain.Blog, error) {
	existing, err := u.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, err
	}

	blog, err := u.buildBlog(input)
	if err != nil {
		return nil, err
	}
	blog.ID = existing.ID
	blog.CreatedAt = existing.CreatedAt
	blog.UpdatedAt = time.Now()

	if err := u.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (u *blogUsecase) Delete(ctx context.Context, id string) error {
	err := u.blogRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Post not found")
	}
	return err
}
