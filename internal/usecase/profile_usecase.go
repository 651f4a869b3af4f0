package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/fieldcodec"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, validate: validate}
}

func (u *profileUsecase) GetProfile(ctx context.Context, lang domain.Language) (*domain.ProfileView, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile has not been set up yet")
	}
	view := profile.Localize(lang)
	return &view, nil
}

// GetForm flattens the stored profile for the admin edit form. The
// structured lists come back as pretty-printed JSON text; when no row
// exists yet the form is blank with empty JSON lists.
func (u *profileUsecase) GetForm(ctx context.Context) (*domain.ProfileForm, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &domain.Profile{
			Education:    []domain.EducationEntry{},
			EducationJP:  []domain.EducationEntry{},
			Experience:   []domain.ExperienceEntry{},
			ExperienceJP: []domain.ExperienceEntry{},
		}
	}

	education, err := fieldcodec.EncodeJSONList(profile.Education)
	if err != nil {
		return nil, err
	}
	educationJP, err := fieldcodec.EncodeJSONList(profile.EducationJP)
	if err != nil {
		return nil, err
	}
	experience, err := fieldcodec.EncodeJSONList(profile.Experience)
	if err != nil {
		return nil, err
	}
	experienceJP, err := fieldcodec.EncodeJSONList(profile.ExperienceJP)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileForm{
		Name:         profile.Name,
		NameJP:       profile.NameJP,
		Tagline:      profile.Tagline,
		TaglineJP:    profile.TaglineJP,
		Bio:          profile.Bio,
		BioJP:        profile.BioJP,
		AboutMe:      profile.AboutMe,
		AboutMeJP:    profile.AboutMeJP,
		Education:    education,
		EducationJP:  educationJP,
		Experience:   experience,
		ExperienceJP: experienceJP,
		AvatarURL:    profile.AvatarURL,
		ResumeURLEn:  profile.ResumeURLEn,
		ResumeURLJp:  profile.ResumeURLJp,
		Email:        profile.Email,
		Github:       profile.Github,
		Linkedin:     profile.Linkedin,
		Twitter:      profile.Twitter,
	}, nil
}

// Save upserts the singleton: update the existing row if one exists,
// insert otherwise. A malformed JSON blob aborts the save - silently
// storing an empty list would destroy the operator's structured data.
func (u *profileUsecase) Save(ctx context.Context, form *domain.ProfileForm) (*domain.Profile, error) {
	if err := validateInput(u.validate, form); err != nil {
		return nil, err
	}

	education, err := fieldcodec.DecodeJSONList[domain.EducationEntry](form.Education)
	if err != nil {
		return nil, apperror.BadRequest("education is not a valid JSON list")
	}
	educationJP, err := fieldcodec.DecodeJSONList[domain.EducationEntry](form.EducationJP)
	if err != nil {
		return nil, apperror.BadRequest("education_jp is not a valid JSON list")
	}
	experience, err := fieldcodec.DecodeJSONList[domain.ExperienceEntry](form.Experience)
	if err != nil {
		return nil, apperror.BadRequest("experience is not a valid JSON list")
	}
	experienceJP, err := fieldcodec.DecodeJSONList[domain.ExperienceEntry](form.ExperienceJP)
	if err != nil {
		return nil, apperror.BadRequest("experience_jp is not a valid JSON list")
	}

	now := time.Now()
	profile := &domain.Profile{
		Name:         form.Name,
		NameJP:       form.NameJP,
		Tagline:      form.Tagline,
		TaglineJP:    form.TaglineJP,
		Bio:          form.Bio,
		BioJP:        form.BioJP,
		AboutMe:      form.AboutMe,
		AboutMeJP:    form.AboutMeJP,
		Education:    education,
		EducationJP:  educationJP,
		Experience:   experience,
		ExperienceJP: experienceJP,
		AvatarURL:    form.AvatarURL,
		ResumeURLEn:  form.ResumeURLEn,
		ResumeURLJp:  form.ResumeURLJp,
		Email:        form.Email,
		Github:       form.Github,
		Linkedin:     form.Linkedin,
		Twitter:      form.Twitter,
		UpdatedAt:    now,
	}

	existing, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := u.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.ID = uuid.NewString()
	profile.CreatedAt = now
	if err := u.profileRepo.Insert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
