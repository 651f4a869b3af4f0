package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type highlightRepo struct {
	db *pgxpool.Pool
}

func NewHighlightRepository(db *pgxpool.Pool) domain.HighlightRepository {
	return &highlightRepo{db: db}
}

const highlightColumns = `
	id, title, COALESCE(title_jp, ''), description, COALESCE(description_jp, ''),
	COALESCE(image_url, ''), date, created_at, updated_at`

func scanHighlight(row pgx.Row) (*domain.Highlight, error) {
	var h domain.Highlight
	err := row.Scan(
		&h.ID, &h.Title, &h.TitleJP, &h.Description, &h.DescriptionJP,
		&h.ImageURL, &h.Date, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *highlightRepo) Fetch(ctx context.Context, limit int) ([]domain.Highlight, error) {
	query := `SELECT ` + highlightColumns + ` FROM highlights ORDER BY date DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	highlights := []domain.Highlight{}
	for rows.Next() {
		h, err := scanHighlight(rows)
		if err != nil {
			return nil, err
		}
		highlights = append(highlights, *h)
	}
	return highlights, rows.Err()
}

func (r *highlightRepo) GetByID(ctx context.Context, id string) (*domain.Highlight, error) {
	query := `SELECT ` + highlightColumns + ` FROM highlights WHERE id = $1`
	h, err := scanHighlight(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *highlightRepo) Create(ctx context.Context, highlight *domain.Highlight) error {
	query := `
		INSERT INTO highlights (id, title, title_jp, description, description_jp, image_url, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		highlight.ID, highlight.Title, highlight.TitleJP,
		highlight.Description, highlight.DescriptionJP,
		highlight.ImageURL, highlight.Date, highlight.CreatedAt, highlight.UpdatedAt,
	)
	return err
}

func (r *highlightRepo) Update(ctx context.Context, highlight *domain.Highlight) error {
	query := `
		UPDATE highlights SET
			title = $2, title_jp = $3, description = $4, description_jp = $5,
			image_url = $6, date = $7, updated_at = $8
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		highlight.ID, highlight.Title, highlight.TitleJP,
		highlight.Description, highlight.DescriptionJP,
		highlight.ImageURL, highlight.Date, highlight.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *highlightRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM highlights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
