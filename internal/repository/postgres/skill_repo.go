package postgres

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `
	id, name, COALESCE(name_jp, ''), category, proficiency, order_index, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.NameJP, &s.Category, &s.Proficiency, &s.OrderIndex,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Fetch applies the two ordering keys in sequence so rows come back
// grouped by category with each group in manual order.
func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY category ASC, order_index ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	s, err := scanSkill(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (id, name, name_jp, category, proficiency, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		skill.ID, skill.Name, skill.NameJP, skill.Category,
		skill.Proficiency, skill.OrderIndex, skill.CreatedAt, skill.UpdatedAt,
	)
	return err
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `
		UPDATE skills SET
			name = $2, name_jp = $3, category = $4, proficiency = $5,
			order_index = $6, updated_at = $7
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		skill.ID, skill.Name, skill.NameJP, skill.Category,
		skill.Proficiency, skill.OrderIndex, skill.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
