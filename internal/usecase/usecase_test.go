package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Insert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Fetch(ctx context.Context) ([]domain.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blog), args.Error(1)
}

func (m *MockBlogRepo) FetchPublished(ctx context.Context) ([]domain.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blog), args.Error(1)
}

func (m *MockBlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepo) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Fetch(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCertificationRepo struct {
	mock.Mock
}

func (m *MockCertificationRepo) Fetch(ctx context.Context, limit int) ([]domain.Certification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockCertificationRepo) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}

func (m *MockCertificationRepo) Create(ctx context.Context, certification *domain.Certification) error {
	return m.Called(ctx, certification).Error(0)
}

func (m *MockCertificationRepo) Update(ctx context.Context, certification *domain.Certification) error {
	return m.Called(ctx, certification).Error(0)
}

func (m *MockCertificationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func validProfileForm() *domain.ProfileForm {
	return &domain.ProfileForm{
		Name:       "Owner",
		Education:  `[{"institution":"University"}]`,
		Experience: `[]`,
	}
}

func TestProfileUpsert(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Inserts when no row exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validate)

		mockRepo.On("Get", ctx).Return(nil, nil)
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "University", p.Education[0].Institution)
		})

		saved, err := uc.Save(ctx, validProfileForm())
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Updates the existing row, preserving ID and CreatedAt", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validate)

		createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		existing := &domain.Profile{ID: "existing-id", CreatedAt: createdAt}
		mockRepo.On("Get", ctx).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "existing-id", p.ID)
			assert.Equal(t, createdAt, p.CreatedAt)
		})

		saved, err := uc.Save(ctx, validProfileForm())
		assert.NoError(t, err)
		assert.Equal(t, "existing-id", saved.ID)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON aborts the save before any read or write", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validate)

		form := validProfileForm()
		form.Experience = `[{"role":` // truncated

		_, err := uc.Save(ctx, form)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "Get", mock.Anything)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Missing name fails validation with no write", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validate)

		form := validProfileForm()
		form.Name = ""

		_, err := uc.Save(ctx, form)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBlogDraftVisibility(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Draft slug is the same 404 as an unknown slug", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, validate)

		mockRepo.On("GetPublishedBySlug", ctx, "draft-post").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetPublishedBySlug", ctx, "no-such-post").Return(nil, domain.ErrNotFound)

		_, errDraft := uc.GetPublishedBySlug(ctx, "draft-post", domain.LanguageEnglish)
		_, errMissing := uc.GetPublishedBySlug(ctx, "no-such-post", domain.LanguageEnglish)

		var appErr *apperror.AppError
		assert.True(t, errors.As(errDraft, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, errDraft.Error(), errMissing.Error())
	})

	t.Run("Store failure is not a 404", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, validate)

		mockRepo.On("GetPublishedBySlug", ctx, "any").Return(nil, errors.New("connection refused"))

		_, err := uc.GetPublishedBySlug(ctx, "any", domain.LanguageEnglish)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestBlogCreateValidation(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Rejects a missing title with no write", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, validate)

		input := &domain.BlogInput{
			Slug:        "post",
			Category:    "tech",
			Content:     "body",
			PublishDate: "2025-06-01",
			Status:      "published",
		}
		_, err := uc.Create(ctx, input)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects an invalid status", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, validate)

		input := &domain.BlogInput{
			Title:       "Post",
			Slug:        "post",
			Category:    "tech",
			Content:     "body",
			PublishDate: "2025-06-01",
			Status:      "archived",
		}
		_, err := uc.Create(ctx, input)
		assert.Error(t, err)
	})

	t.Run("Rejects a malformed publish date", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, validate)

		input := &domain.BlogInput{
			Title:       "Post",
			Slug:        "post",
			Category:    "tech",
			Content:     "body",
			PublishDate: "June 1st",
			Status:      "draft",
		}
		_, err := uc.Create(ctx, input)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestBlogUpdatePreservesIdentity(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, validate)

	createdAt := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Blog{ID: "blog-1", CreatedAt: createdAt}
	mockRepo.On("GetByID", ctx, "blog-1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Blog")).Return(nil).Run(func(args mock.Arguments) {
		b := args.Get(1).(*domain.Blog)
		assert.Equal(t, "blog-1", b.ID)
		assert.Equal(t, createdAt, b.CreatedAt)
		assert.True(t, b.UpdatedAt.After(createdAt))
	})

	input := &domain.BlogInput{
		Title:       "Updated",
		Slug:        "post",
		Category:    "tech",
		Content:     "body",
		PublishDate: "2025-06-01",
		Status:      "published",
	}
	updated, err := uc.Update(ctx, "blog-1", input)
	assert.NoError(t, err)
	assert.Equal(t, "blog-1", updated.ID)
}

func TestProjectFieldSplitting(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	mockRepo := new(MockProjectRepo)
	uc := usecase.NewProjectUsecase(mockRepo, validate)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil)

	input := &domain.ProjectInput{
		Title:       "Portfolio",
		Description: "This site",
		TechStack:   " Go, Gin ,, Postgres ",
		Images:      "a.png,b.png",
	}
	project, err := uc.Create(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go", "Gin", "Postgres"}, project.TechStack)
	assert.Equal(t, []string{"a.png", "b.png"}, project.Images)
	assert.NotEmpty(t, project.ID)
}

func TestCertificationMissingID(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Update of a missing id is 404 with no write", func(t *testing.T) {
		mockRepo := new(MockCertificationRepo)
		uc := usecase.NewCertificationUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		input := &domain.CertificationInput{
			Title: "Cert",
			Type:  "certificate",
			Date:  "2025-01-15",
		}
		_, err := uc.Update(ctx, "ghost", input)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Delete of a missing id is 404", func(t *testing.T) {
		mockRepo := new(MockCertificationRepo)
		uc := usecase.NewCertificationUsecase(mockRepo, validate)

		mockRepo.On("Delete", ctx, "ghost").Return(domain.ErrNotFound)

		err := uc.Delete(ctx, "ghost")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Delete of an existing id succeeds", func(t *testing.T) {
		mockRepo := new(MockCertificationRepo)
		uc := usecase.NewCertificationUsecase(mockRepo, validate)

		mockRepo.On("Delete", ctx, "cert-1").Return(nil)

		assert.NoError(t, uc.Delete(ctx, "cert-1"))
	})
}

func TestHomeAggregate(t *testing.T) {
	ctx := context.Background()

	newMocks := func() (*MockProfileRepo, *MockHighlightRepo, *MockAchievementRepo, *MockConferenceRepo, *MockResearchRepo) {
		return new(MockProfileRepo), new(MockHighlightRepo), new(MockAchievementRepo), new(MockConferenceRepo), new(MockResearchRepo)
	}
	limits := usecase.HomeLimits{Highlights: 3, Achievements: 3, Conferences: 2, Research: 2}

	t.Run("Missing profile leaves the section nil without failing", func(t *testing.T) {
		profileRepo, highlightRepo, achievementRepo, conferenceRepo, researchRepo := newMocks()
		uc := usecase.NewHomeUsecase(profileRepo, highlightRepo, achievementRepo, conferenceRepo, researchRepo, limits)

		profileRepo.On("Get", mock.Anything).Return(nil, nil)
		highlightRepo.On("Fetch", mock.Anything, 3).Return([]domain.Highlight{{Title: "H"}}, nil)
		achievementRepo.On("Fetch", mock.Anything, 3).Return([]domain.Achievement{}, nil)
		conferenceRepo.On("Fetch", mock.Anything, 2).Return([]domain.Conference{}, nil)
		researchRepo.On("Fetch", mock.Anything, 2).Return([]domain.Research{}, nil)

		view, err := uc.Get(ctx, domain.LanguageEnglish)
		assert.NoError(t, err)
		assert.Nil(t, view.Profile)
		assert.Len(t, view.Highlights, 1)
		assert.NotNil(t, view.Achievements)
	})

	t.Run("Any failing read fails the aggregate", func(t *testing.T) {
		profileRepo, highlightRepo, achievementRepo, conferenceRepo, researchRepo := newMocks()
		uc := usecase.NewHomeUsecase(profileRepo, highlightRepo, achievementRepo, conferenceRepo, researchRepo, limits)

		profileRepo.On("Get", mock.Anything).Return(nil, nil)
		highlightRepo.On("Fetch", mock.Anything, 3).Return([]domain.Highlight{}, nil)
		achievementRepo.On("Fetch", mock.Anything, 3).Return(nil, errors.New("connection refused"))
		conferenceRepo.On("Fetch", mock.Anything, 2).Return([]domain.Conference{}, nil)
		researchRepo.On("Fetch", mock.Anything, 2).Return([]domain.Research{}, nil)

		view, err := uc.Get(ctx, domain.LanguageEnglish)
		assert.Error(t, err)
		assert.Nil(t, view)
	})
}

type MockHighlightRepo struct {
	mock.Mock
}

func (m *MockHighlightRepo) Fetch(ctx context.Context, limit int) ([]domain.Highlight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Highlight), args.Error(1)
}

func (m *MockHighlightRepo) GetByID(ctx context.Context, id string) (*domain.Highlight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Highlight), args.Error(1)
}

func (m *MockHighlightRepo) Create(ctx context.Context, highlight *domain.Highlight) error {
	return m.Called(ctx, highlight).Error(0)
}

func (m *MockHighlightRepo) Update(ctx context.Context, highlight *domain.Highlight) error {
	return m.Called(ctx, highlight).Error(0)
}

func (m *MockHighlightRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAchievementRepo struct {
	mock.Mock
}

func (m *MockAchievementRepo) Fetch(ctx context.Context, limit int) ([]domain.Achievement, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Achievement), args.Error(1)
}

func (m *MockAchievementRepo) Create(ctx context.Context, achievement *domain.Achievement) error {
	return m.Called(ctx, achievement).Error(0)
}

func (m *MockAchievementRepo) Update(ctx context.Context, achievement *domain.Achievement) error {
	return m.Called(ctx, achievement).Error(0)
}

func (m *MockAchievementRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockConferenceRepo struct {
	mock.Mock
}

func (m *MockConferenceRepo) Fetch(ctx context.Context, limit int) ([]domain.Conference, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conference), args.Error(1)
}

func (m *MockConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conference), args.Error(1)
}

func (m *MockConferenceRepo) Create(ctx context.Context, conference *domain.Conference) error {
	return m.Called(ctx, conference).Error(0)
}

func (m *MockConferenceRepo) Update(ctx context.Context, conference *domain.Conference) error {
	return m.Called(ctx, conference).Error(0)
}

func (m *MockConferenceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockResearchRepo struct {
	mock.Mock
}

func (m *MockResearchRepo) Fetch(ctx context.Context, limit int) ([]domain.Research, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Research), args.Error(1)
}

func (m *MockResearchRepo) GetByID(ctx context.Context, id string) (*domain.Research, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Research), args.Error(1)
}

func (m *MockResearchRepo) Create(ctx context.Context, research *domain.Research) error {
	return m.Called(ctx, research).Error(0)
}

func (m *MockResearchRepo) Update(ctx context.Context, research *domain.Research) error {
	return m.Called(ctx, research).Error(0)
}

func (m *MockResearchRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
