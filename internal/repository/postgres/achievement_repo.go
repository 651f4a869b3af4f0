package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type achievementRepo struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) domain.AchievementRepository {
	return &achievementRepo{db: db}
}

const achievementColumns = `
	id, title, COALESCE(title_jp, ''), description, COALESCE(description_jp, ''),
	date, COALESCE(image, ''), created_at, updated_at`

func scanAchievement(row pgx.Row) (*domain.Achievement, error) {
	var a domain.Achievement
	err := row.Scan(
		&a.ID, &a.Title, &a.TitleJP, &a.Description, &a.DescriptionJP,
		&a.Date, &a.Image, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *achievementRepo) Fetch(ctx context.Context, limit int) ([]domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements ORDER BY date DESC`
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

	achievements := []domain.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

func (r *achievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`
	a, err := scanAchievement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *achievementRepo) Create(ctx context.Context, achievement *domain.Achievement) error {
	query := `
		INSERT INTO achievements (id, title, title_jp, description, description_jp, date, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		achievement.ID, achievement.Title, achievement.TitleJP,
		achievement.Description, achievement.DescriptionJP,
		achievement.Date, achievement.Image, achievement.CreatedAt, achievement.UpdatedAt,
	)
	return err
}

func (r *achievementRepo) Update(ctx context.Context, achievement *domain.Achievement) error {
	query := `
		UPDATE achievements SET
			title = $2, title_jp = $3, description = $4, description_jp = $5,
			date = $6, image = $7, updated_at = $8
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		achievement.ID, achievement.Title, achievement.TitleJP,
		achievement.Description, achievement.DescriptionJP,
		achievement.Date, achievement.Image, achievement.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *achievementRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
