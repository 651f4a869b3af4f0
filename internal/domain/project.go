package domain

import (
	"context"
	"time"
)

// Project listing order is order_index ascending, then creation time
// ascending, so manually ordered items stay stable as new ones arrive.
type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TitleJP       string    `json:"title_jp"`
	Description   string    `json:"description"`
	DescriptionJP string    `json:"description_jp"`
	Images        []string  `json:"images"`
	TechStack     []string  `json:"tech_stack"`
	ProjectLink   string    `json:"project_link"`
	GithubLink    string    `json:"github_link"`
	Date          string    `json:"date"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectInput carries images and tech_stack as comma-joined text.
type ProjectInput struct {
	Title         string `json:"title" validate:"required"`
	TitleJP       string `json:"title_jp"`
	Description   string `json:"description" validate:"required"`
	DescriptionJP string `json:"description_jp"`
	Images        string `json:"images"`
	TechStack     string `json:"tech_stack"`
	ProjectLink   string `json:"project_link"`
	GithubLink    string `json:"github_link"`
	Date          string `json:"date"`
	OrderIndex    int    `json:"order_index"`
}

type ProjectView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	TechStack   []string `json:"tech_stack"`
	ProjectLink string   `json:"project_link"`
	GithubLink  string   `json:"github_link"`
	Date        string   `json:"date"`
	OrderIndex  int      `json:"order_index"`
}

func (p *Project) Localize(lang Language) ProjectView {
	return ProjectView{
		ID:          p.ID,
		Title:       lang.Resolve(p.Title, p.TitleJP),
		Description: lang.Resolve(p.Description, p.DescriptionJP),
		Images:      p.Images,
		TechStack:   p.TechStack,
		ProjectLink: p.ProjectLink,
		GithubLink:  p.GithubLink,
		Date:        p.Date,
		OrderIndex:  p.OrderIndex,
	}
}

type ProjectRepository interface {
	Fetch(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectUsecase interface {
	ListPublic(ctx context.Context, lang Language) ([]ProjectView, error)
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, input *ProjectInput) (*Project, error)
	Update(ctx context.Context, id string, input *ProjectInput) (*Project, error)
	Delete(ctx context.Context, id string) error
}
