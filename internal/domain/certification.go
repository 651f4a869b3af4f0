package domain

import (
	"context"
	"time"
)

const (
	CertificationTypeCertificate = "certificate"
	CertificationTypeLOR         = "lor"
	CertificationTypeOther       = "other"
)

type Certification struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleJP       string    `json:"title_jp"`
	Description   string    `json:"description"`
	DescriptionJP string    `json:"description_jp"`
	Images        []string  `json:"images"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	DownloadURL   string    `json:"download_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CertificationInput struct {
	Title         string `json:"title" validate:"required"`
	TitleJP       string `json:"title_jp"`
	Description   string `json:"description"`
	DescriptionJP string `json:"description_jp"`
	Images        string `json:"images"`
	Type          string `json:"type" validate:"required,oneof=certificate lor other"`
	Date          string `json:"date" validate:"required"`
	DownloadURL   string `json:"download_url"`
}

type CertificationView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	DownloadURL string    `json:"download_url"`
}

func (c *Certification) Localize(lang Language) CertificationView {
	return CertificationView{
		ID:          c.ID,
		Title:       lang.Resolve(c.Title, c.TitleJP),
		Description: lang.Resolve(c.Description, c.DescriptionJP),
		Images:      c.Images,
		Type:        c.Type,
		Date:        c.Date,
		DownloadURL: c.DownloadURL,
	}
}

type CertificationRepository interface {
	Fetch(ctx context.Context, limit int) ([]Certification, error)
	GetByID(ctx context.Context, id string) (*Certification, error)
	Create(ctx context.Context, certification *Certification) error
	Update(ctx context.Context, certification *Certification) error
	Delete(ctx context.Context, id string) error
}

type CertificationUsecase interface {
	ListPublic(ctx context.Context, lang Language) ([]CertificationView, error)
	List(ctx context.Context) ([]Certification, error)
	Create(ctx context.Context, input *CertificationInput) (*Certification, error)
	Update(ctx context.Context, id string, input *CertificationInput) (*Certification, error)
	Delete(ctx context.Context, id string) error
}
