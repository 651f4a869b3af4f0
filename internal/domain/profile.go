package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// EducationEntry is one row of the profile's education history.
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	Years          string `json:"years,omitempty"`
	Grade          string `json:"grade,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Electives      string `json:"electives,omitempty"`
}

// ExperienceEntry is one row of the profile's work history.
type ExperienceEntry struct {
	Role         string `json:"role"`
	Organization string `json:"organization,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Profile is the singleton owner record. At most one row exists; saves
// must update the existing row when present.
type Profile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	NameJP       string            `json:"name_jp"`
	Tagline      string            `json:"tagline"`
	TaglineJP    string            `json:"tagline_jp"`
	Bio          string            `json:"bio"`
	BioJP        string            `json:"bio_jp"`
	AboutMe      string            `json:"about_me"`
	AboutMeJP    string            `json:"about_me_jp"`
	Education    []EducationEntry  `json:"education"`
	EducationJP  []EducationEntry  `json:"education_jp"`
	Experience   []ExperienceEntry `json:"experience"`
	ExperienceJP []ExperienceEntry `json:"experience_jp"`
	AvatarURL    string            `json:"avatar_url"`
	ResumeURLEn  string            `json:"resume_url_en"`
	ResumeURLJp  string            `json:"resume_url_jp"`
	Email        string            `json:"email"`
	Github       string            `json:"github"`
	Linkedin     string            `json:"linkedin"`
	Twitter      string            `json:"twitter"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ProfileView is the localized public shape of the profile.
type ProfileView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Tagline     string            `json:"tagline"`
	Bio         string            `json:"bio"`
	AboutMe     string            `json:"about_me"`
	Education   []EducationEntry  `json:"education"`
	Experience  []ExperienceEntry `json:"experience"`
	AvatarURL   string            `json:"avatar_url"`
	ResumeURLEn string            `json:"resume_url_en"`
	ResumeURLJp string            `json:"resume_url_jp"`
	Email       string            `json:"email"`
	Github      string            `json:"github"`
	Linkedin    string            `json:"linkedin"`
	Twitter     string            `json:"twitter"`
}

// Localize resolves every bilingual field pair independently. The
// structured lists fall back wholesale: the Japanese list replaces the
// English one only when it has entries.
func (p *Profile) Localize(lang Language) ProfileView {
	education := p.Education
	if lang == LanguageJapanese && len(p.EducationJP) > 0 {
		education = p.EducationJP
	}
	experience := p.Experience
	if lang == LanguageJapanese && len(p.ExperienceJP) > 0 {
		experience = p.ExperienceJP
	}
	return ProfileView{
		ID:          p.ID,
		Name:        lang.Resolve(p.Name, p.NameJP),
		Tagline:     lang.Resolve(p.Tagline, p.TaglineJP),
		Bio:         lang.Resolve(p.Bio, p.BioJP),
		AboutMe:     lang.Resolve(p.AboutMe, p.AboutMeJP),
		Education:   education,
		Experience:  experience,
		AvatarURL:   p.AvatarURL,
		ResumeURLEn: p.ResumeURLEn,
		ResumeURLJp: p.ResumeURLJp,
		Email:       p.Email,
		Github:      p.Github,
		Linkedin:    p.Linkedin,
		Twitter:     p.Twitter,
	}
}

// ProfileForm is the flattened admin edit shape: the structured lists
// travel as JSON text, exactly as the admin form edits them.
type ProfileForm struct {
	Name         string `json:"name" validate:"required"`
	NameJP       string `json:"name_jp"`
	Tagline      string `json:"tagline"`
	TaglineJP    string `json:"tagline_jp"`
	Bio          string `json:"bio"`
	BioJP        string `json:"bio_jp"`
	AboutMe      string `json:"about_me"`
	AboutMeJP    string `json:"about_me_jp"`
	Education    string `json:"education"`
	EducationJP  string `json:"education_jp"`
	Experience   string `json:"experience"`
	ExperienceJP string `json:"experience_jp"`
	AvatarURL    string `json:"avatar_url"`
	ResumeURLEn  string `json:"resume_url_en"`
	ResumeURLJp  string `json:"resume_url_jp"`
	Email        string `json:"email"`
	Github       string `json:"github"`
	Linkedin     string `json:"linkedin"`
	Twitter      string `json:"twitter"`
}

type ProfileRepository interface {
	// Get returns (nil, nil) when no row exists yet.
	Get(ctx context.Context) (*Profile, error)
	Insert(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, lang Language) (*ProfileView, error)
	// GetForm returns the flattened edit representation for the admin form.
	GetForm(ctx context.Context) (*ProfileForm, error)
	// Save upserts: update when a row exists, insert otherwise.
	Save(ctx context.Context, form *ProfileForm) (*Profile, error)
}
