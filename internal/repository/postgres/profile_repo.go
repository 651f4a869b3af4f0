package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	id, name, COALESCE(name_jp, ''), COALESCE(tagline, ''), COALESCE(tagline_jp, ''),
	COALESCE(bio, ''), COALESCE(bio_jp, ''), COALESCE(about_me, ''), COALESCE(about_me_jp, ''),
	COALESCE(education, '[]'), COALESCE(education_jp, '[]'),
	COALESCE(experience, '[]'), COALESCE(experience_jp, '[]'),
	COALESCE(avatar_url, ''), COALESCE(resume_url_en, ''), COALESCE(resume_url_jp, ''),
	COALESCE(email, ''), COALESCE(github, ''), COALESCE(linkedin, ''), COALESCE(twitter, ''),
	created_at, updated_at`

// Get returns the singleton row, or (nil, nil) when none exists yet.
func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profile LIMIT 1`

	var p domain.Profile
	var education, educationJP, experience, experienceJP []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.NameJP, &p.Tagline, &p.TaglineJP,
		&p.Bio, &p.BioJP, &p.AboutMe, &p.AboutMeJP,
		&education, &educationJP,
		&experience, &experienceJP,
		&p.AvatarURL, &p.ResumeURLEn, &p.ResumeURLJp,
		&p.Email, &p.Github, &p.Linkedin, &p.Twitter,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, fmt.Errorf("profile education column: %w", err)
	}
	if err := json.Unmarshal(educationJP, &p.EducationJP); err != nil {
		return nil, fmt.Errorf("profile education_jp column: %w", err)
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return nil, fmt.Errorf("profile experience column: %w", err)
	}
	if err := json.Unmarshal(experienceJP, &p.ExperienceJP); err != nil {
		return nil, fmt.Errorf("profile experience_jp column: %w", err)
	}

	return &p, nil
}

func (r *profileRepo) Insert(ctx context.Context, profile *domain.Profile) error {
	education, educationJP, experience, experienceJP, err := marshalProfileLists(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profile (
			id, name, name_jp, tagline, tagline_jp, bio, bio_jp, about_me, about_me_jp,
			education, education_jp, experience, experience_jp,
			avatar_url, resume_url_en, resume_url_jp, email, github, linkedin, twitter,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err = r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.NameJP, profile.Tagline, profile.TaglineJP,
		profile.Bio, profile.BioJP, profile.AboutMe, profile.AboutMeJP,
		education, educationJP, experience, experienceJP,
		profile.AvatarURL, profile.ResumeURLEn, profile.ResumeURLJp,
		profile.Email, profile.Github, profile.Linkedin, profile.Twitter,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	education, educationJP, experience, experienceJP, err := marshalProfileLists(profile)
	if err != nil {
		return err
	}

	query := `
		UPDATE profile SET
			name = $2, name_jp = $3, tagline = $4, tagline_jp = $5,
			bio = $6, bio_jp = $7, about_me = $8, about_me_jp = $9,
			education = $10, education_jp = $11, experience = $12, experience_jp = $13,
			avatar_url = $14, resume_url_en = $15, resume_url_jp = $16,
			email = $17, github = $18, linkedin = $19, twitter = $20,
			updated_at = $21
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.NameJP, profile.Tagline, profile.TaglineJP,
		profile.Bio, profile.BioJP, profile.AboutMe, profile.AboutMeJP,
		education, educationJP, experience, experienceJP,
		profile.AvatarURL, profile.ResumeURLEn, profile.ResumeURLJp,
		profile.Email, profile.Github, profile.Linkedin, profile.Twitter,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalProfileLists(profile *domain.Profile) ([]byte, []byte, []byte, []byte, error) {
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	educationJP, err := json.Marshal(profile.EducationJP)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	experience, err := json.Marshal(profile.Experience)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	experienceJP, err := json.Marshal(profile.ExperienceJP)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return education, educationJP, experience, experienceJP, nil
}
