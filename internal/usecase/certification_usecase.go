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

type certificationUsecase struct {
	certificationRepo domain.CertificationRepository
	validate          *validator.Validate
}

func NewCertificationUsecase(certificationRepo domain.CertificationRepository, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{certificationRepo: certificationRepo, validate: validate}
}

func (u *certificationUsecase) ListPublic(ctx context.Context, lang domain.Language) ([]domain.CertificationView, error) {
	certifications, err := u.certificationRepo.Fetch(ctx, 0)
	if err != nil {
		return nil, err
	}
	views := []domain.CertificationView{}
	for i := range certifications {
		views = append(views, certifications[i].Localize(lang))
	}
	return views, nil
}

func (u *certificationUsecase) List(ctx context.Context) ([]domain.Certification, error) {
	return u.certificationRepo.Fetch(ctx, 0)
}

func (u *certificationUsecase) buildCertification(input *domain.CertificationInput) (*domain.Certification, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	date, err := parseDate("date", input.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Certification{
		Title:         input.Title,
		TitleJP:       input.TitleJP,
		Description:   input.Description,
		DescriptionJP: input.DescriptionJP,
		Images:        fieldcodec.SplitList(input.Images),
		Type:          input.Type,
		Date:          date,
		DownloadURL:   input.DownloadURL,
	}, nil
}

func (u *certificationUsecase) Create(ctx context.Context, input *domain.CertificationInput) (*domain.Certification, error) {
	certification, err := u.buildCertification(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	certification.ID = uuid.NewString()
	certification.CreatedAt = now
	certification.UpdatedAt = now

	if err := u.certificationRepo.Create(ctx, certification); err != nil {
		return nil, err
	}
	return certification, nil
}

func (u *certificationUsecase) Update(ctx context.Context, id string, input *domain.CertificationInput) (*domain.Certification, error) {
	existing, err := u.certificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}

	certification, err := u.buildCertification(input)
	if err != nil {
		return nil, err
	}
	certification.ID = existing.ID
	certification.CreatedAt = existing.CreatedAt
	certification.UpdatedAt = time.Now()

	if err := u.certificationRepo.Update(ctx, certification); err != nil {
		return nil, err
	}
	return certification, nil
}

func (u *certificationUsecase) Delete(ctx context.Context, id string) error {
	err := u.certificationRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Certification not found")
	}
	return err
}
