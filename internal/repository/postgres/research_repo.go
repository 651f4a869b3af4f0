package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type researchRepo struct {
	db *pgxpool.Pool
}

func NewResearchRepository(db *pgxpool.Pool) domain.ResearchRepository {
	return &researchRepo{db: db}
}

const researchColumns = `
	id, title, COALESCE(title_jp, ''), date, COALESCE(venue, ''), COALESCE(venue_jp, ''),
	COALESCE(status, ''), COALESCE(abstract, ''), COALESCE(abstract_jp, ''),
	COALESCE(paper_link, ''), COALESCE(image_url, ''), authors, keywords,
	created_at, updated_at`

func scanResearch(row pgx.Row) (*domain.Research, error) {
	var res domain.Research
	var authors, keywords []string
	err := row.Scan(
		&res.ID, &res.Title, &res.TitleJP, &res.Date, &res.Venue, &res.VenueJP,
		&res.Status, &res.Abstract, &res.AbstractJP,
		&res.PaperLink, &res.ImageURL, pq.Array(&authors), pq.Array(&keywords),
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if authors == nil {
		authors = []string{}
	}
	if keywords == nil {
		keywords = []string{}
	}
	res.Authors = authors
	res.Keywords = keywords
	return &res, nil
}

func (r *researchRepo) Fetch(ctx context.Context, limit int) ([]domain.Research, error) {
	query := `SELECT ` + researchColumns + ` FROM research ORDER BY date DESC`
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

	entries := []domain.Research{}
	for rows.Next() {
		res, err := scanResearch(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *res)
	}
	return entries, rows.Err()
}

func (r *researchRepo) GetByID(ctx context.Context, id string) (*domain.Research, error) {
	query := `SELECT ` + researchColumns + ` FROM research WHERE id = $1`
	res, err := scanResearch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *researchRepo) Create(ctx context.Context, research *domain.Research) error {
	query := `
		INSERT INTO research (id, title, title_jp, date, venue, venue_jp, status, abstract, abstract_jp, paper_link, image_url, authors, keywords, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		research.ID, research.Title, research.TitleJP, research.Date, research.Venue, research.VenueJP,
		research.Status, research.Abstract, research.AbstractJP,
		research.PaperLink, research.ImageURL, pq.Array(research.Authors), pq.Array(research.Keywords),
		research.CreatedAt, research.UpdatedAt,
	)
	return err
}

func (r *researchRepo) Update(ctx context.Context, research *domain.Research) error {
	query := `
		UPDATE research SET
			title = $2, title_jp = $3, date = $4, venue = $5, venue_jp = $6,
			status = $7, abstract = $8, abstract_jp = $9,
			paper_link = $10, image_url = $11, authors = $12, keywords = $13,
			updated_at = $14
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		research.ID, research.Title, research.TitleJP, research.Date, research.Venue, research.VenueJP,
		research.Status, research.Abstract, research.AbstractJP,
		research.PaperLink, research.ImageURL, pq.Array(research.Authors), pq.Array(research.Keywords),
		research.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *researchRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM research WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
