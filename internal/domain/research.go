package domain

import (
	"context"
	"time"
)

// ResearchStatusAccepted gates the public paper link: an accepted but
// not yet published paper never exposes its link.
const ResearchStatusAccepted = "Accepted"

type Research struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TitleJP    string    `json:"title_jp"`
	Date       time.Time `json:"date"`
	Venue      string    `json:"venue"`
	VenueJP    string    `json:"venue_jp"`
	Status     string    `json:"status"`
	Abstract   string    `json:"abstract"`
	AbstractJP string    `json:"abstract_jp"`
	PaperLink  string    `json:"paper_link"`
	ImageURL   string    `json:"image_url"`
	Authors    []string  `json:"authors"`
	Keywords   []string  `json:"keywords"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ResearchInput carries authors and keywords as comma-joined text.
type ResearchInput struct {
	Title      string `json:"title" validate:"required"`
	TitleJP    string `json:"title_jp"`
	Date       string `json:"date" validate:"required"`
	Venue      string `json:"venue"`
	VenueJP    string `json:"venue_jp"`
	Status     string `json:"status"`
	Abstract   string `json:"abstract"`
	AbstractJP string `json:"abstract_jp"`
	PaperLink  string `json:"paper_link"`
	ImageURL   string `json:"image_url"`
	Authors    string `json:"authors"`
	Keywords   string `json:"keywords"`
}

type ResearchView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	Status    string    `json:"status"`
	Abstract  string    `json:"abstract"`
	PaperLink string    `json:"paper_link,omitempty"`
	ImageURL  string    `json:"image_url"`
	Authors   []string  `json:"authors"`
	Keywords  []string  `json:"keywords"`
}

func (r *Research) Localize(lang Language) ResearchView {
	view := ResearchView{
		ID:       r.ID,
		Title:    lang.Resolve(r.Title, r.TitleJP),
		Date:     r.Date,
		Venue:    lang.Resolve(r.Venue, r.VenueJP),
		Status:   r.Status,
		Abstract: lang.Resolve(r.Abstract, r.AbstractJP),
		ImageURL: r.ImageURL,
		Authors:  r.Authors,
		Keywords: r.Keywords,
	}
	if r.Status != ResearchStatusAccepted {
		view.PaperLink = r.PaperLink
	}
	return view
}

type ResearchRepository interface {
	// Fetch returns entries date descending; limit <= 0 means all.
	Fetch(ctx context.Context, limit int) ([]Research, error)
	GetByID(ctx context.Context, id string) (*Research, error)
	Create(ctx context.Context, research *Research) error
	Update(ctx context.Context, research *Research) error
	Delete(ctx context.Context, id string) error
}

type ResearchUsecase interface {
	ListPublic(ctx context.Context, lang Language) ([]ResearchView, error)
	List(ctx context.Context) ([]Research, error)
	Create(ctx context.Context, input *ResearchInput) (*Research, error)
	Update(ctx context.Context, id string, input *ResearchInput) (*Research, error)
	Delete(ctx context.Context, id string) error
}
