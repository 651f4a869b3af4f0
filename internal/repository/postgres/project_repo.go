package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `
	id, title, COALESCE(title_jp, ''), description, COALESCE(description_jp, ''),
	images, tech_stack, COALESCE(project_link, ''), COALESCE(github_link, ''),
	COALESCE(date, ''), order_index, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var images, techStack []string
	err := row.Scan(
		&p.ID, &p.Title, &p.TitleJP, &p.Description, &p.DescriptionJP,
		pq.Array(&images), pq.Array(&techStack), &p.ProjectLink, &p.GithubLink,
		&p.Date, &p.OrderIndex, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}
	if techStack == nil {
		techStack = []string{}
	}
	p.Images = images
	p.TechStack = techStack
	return &p, nil
}

// Fetch keeps manual ordering stable: order_index first, then creation
// time so equally indexed projects list in FIFO order.
func (r *projectRepo) Fetch(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY order_index ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, title, title_jp, description, description_jp, images, tech_stack, project_link, github_link, date, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		project.ID, project.Title, project.TitleJP, project.Description, project.DescriptionJP,
		pq.Array(project.Images), pq.Array(project.TechStack), project.ProjectLink, project.GithubLink,
		project.Date, project.OrderIndex, project.CreatedAt, project.UpdatedAt,
	)
	return err
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects SET
			title = $2, title_jp = $3, description = $4, description_jp = $5,
			images = $6, tech_stack = $7, project_link = $8, github_link = $9,
			date = $10, order_index = $11, updated_at = $12
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		project.ID, project.Title, project.TitleJP, project.Description, project.DescriptionJP,
		pq.Array(project.Images), pq.Array(project.TechStack), project.ProjectLink, project.GithubLink,
		project.Date, project.OrderIndex, project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
