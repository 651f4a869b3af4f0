package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type certificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

const certificationColumns = `
	id, title, COALESCE(title_jp, ''), COALESCE(description, ''), COALESCE(description_jp, ''),
	images, type, date, COALESCE(download_url, ''), created_at, updated_at`

func scanCertification(row pgx.Row) (*domain.Certification, error) {
	var c domain.Certification
	var images []string
	err := row.Scan(
		&c.ID, &c.Title, &c.TitleJP, &c.Description, &c.DescriptionJP,
		pq.Array(&images), &c.Type, &c.Date, &c.DownloadURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}
	c.Images = images
	return &c, nil
}

func (r *certificationRepo) Fetch(ctx context.Context, limit int) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications ORDER BY date DESC`
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

	certifications := []domain.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certifications = append(certifications, *c)
	}
	return certifications, rows.Err()
}

func (r *certificationRepo) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1`
	c, err := scanCertification(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *certificationRepo) Create(ctx context.Context, certification *domain.Certification) error {
	query := `
		INSERT INTO certifications (id, title, title_jp, description, description_jp, images, type, date, download_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		certification.ID, certification.Title, certification.TitleJP,
		certification.Description, certification.DescriptionJP,
		pq.Array(certification.Images), certification.Type, certification.Date,
		certification.DownloadURL, certification.CreatedAt, certification.UpdatedAt,
	)
	return err
}

func (r *certificationRepo) Update(ctx context.Context, certification *domain.Certification) error {
	query := `
		UPDATE certifications SET
			title = $2, title_jp = $3, description = $4, description_jp = $5,
			images = $6, type = $7, date = $8, download_url = $9, updated_at = $10
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		certification.ID, certification.Title, certification.TitleJP,
		certification.Description, certification.DescriptionJP,
		pq.Array(certification.Images), certification.Type, certification.Date,
		certification.DownloadURL, certification.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
