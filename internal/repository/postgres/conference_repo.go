package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type conferenceRepo struct {
	db *pgxpool.Pool
}

func NewConferenceRepository(db *pgxpool.Pool) domain.ConferenceRepository {
	return &conferenceRepo{db: db}
}

const conferenceColumns = `
	id, title, COALESCE(title_jp, ''), COALESCE(description, ''), COALESCE(description_jp, ''),
	date, COALESCE(location, ''), images, created_at, updated_at`

func scanConference(row pgx.Row) (*domain.Conference, error) {
	var c domain.Conference
	var images []string
	err := row.Scan(
		&c.ID, &c.Title, &c.TitleJP, &c.Description, &c.DescriptionJP,
		&c.Date, &c.Location, pq.Array(&images), &c.CreatedAt, &c.UpdatedAt,
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

func (r *conferenceRepo) Fetch(ctx context.Context, limit int) ([]domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences ORDER BY date DESC`
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

	conferences := []domain.Conference{}
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, *c)
	}
	return conferences, rows.Err()
}

func (r *conferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	c, err := scanConference(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepo) Create(ctx context.Context, conference *domain.Conference) error {
	query := `
		INSERT INTO conferences (id, title, title_jp, description, description_jp, date, location, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		conference.ID, conference.Title, conference.TitleJP, conference.Description, conference.DescriptionJP,
		conference.Date, conference.Location, pq.Array(conference.Images),
		conference.CreatedAt, conference.UpdatedAt,
	)
	return err
}

func (r *conferenceRepo) Update(ctx context.Context, conference *domain.Conference) error {
	query := `
		UPDATE conferences SET
			title = $2, title_jp = $3, description = $4, description_jp = $5,
			date = $6, location = $7, images = $8, updated_at = $9
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		conference.ID, conference.Title, conference.TitleJP, conference.Description, conference.DescriptionJP,
		conference.Date, conference.Location, pq.Array(conference.Images), conference.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conferenceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM conferences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
