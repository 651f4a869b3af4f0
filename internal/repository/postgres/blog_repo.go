package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type blogRepo struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) domain.BlogRepository {
	return &blogRepo{db: db}
}

const blogColumns = `
	id, title, COALESCE(title_jp, ''), slug, category,
	content, COALESCE(content_jp, ''), images, COALESCE(audio_url, ''),
	publish_date, status, created_at, updated_at`

func scanBlog(row pgx.Row) (*domain.Blog, error) {
	var b domain.Blog
	var images []string
	err := row.Scan(
		&b.ID, &b.Title, &b.TitleJP, &b.Slug, &b.Category,
		&b.Content, &b.ContentJP, pq.Array(&images), &b.AudioURL,
		&b.PublishDate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}
	b.Images = images
	return &b, nil
}

func (r *blogRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Blog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Zero rows is an empty list, never nil: the caller must be able to
	// tell "no posts" apart from a failed read.
	blogs := []domain.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

func (r *blogRepo) Fetch(ctx context.Context) ([]domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY publish_date DESC`
	return r.fetch(ctx, query)
}

func (r *blogRepo) FetchPublished(ctx context.Context) ([]domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE status = $1 ORDER BY publish_date DESC`
	return r.fetch(ctx, query, domain.BlogStatusPublished)
}

// GetPublishedBySlug filters on status server-side so a draft slug is
// indistinguishable from a missing one.
func (r *blogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1 AND status = $2`
	b, err := scanBlog(r.db.QueryRow(ctx, query, slug, domain.BlogStatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *blogRepo) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	b, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *blogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (id, title, title_jp, slug, category, content, content_jp, images, audio_url, publish_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		blog.ID, blog.Title, blog.TitleJP, blog.Slug, blog.Category,
		blog.Content, blog.ContentJP, pq.Array(blog.Images), blog.AudioURL,
		blog.PublishDate, blog.Status, blog.CreatedAt, blog.UpdatedAt,
	)
	return err
}

func (r *blogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	query := `
		UPDATE blogs SET
			title = $2, title_jp = $3, slug = $4, category = $5,
			content = $6, content_jp = $7, images = $8, audio_url = $9,
			publish_date = $10, status = $11, updated_at = $12
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		blog.ID, blog.Title, blog.TitleJP, blog.Slug, blog.Category,
		blog.Content, blog.ContentJP, pq.Array(blog.Images), blog.AudioURL,
		blog.PublishDate, blog.Status, blog.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
