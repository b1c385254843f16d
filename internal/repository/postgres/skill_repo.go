package postgres

import (
	"context"

	"skills-api/internal/domain"

	"github.com/jackc/pgx/v5"
)

var skillColumns = []string{"id", "skill", "level", "theme_id"}

type skillRepo struct {
	db DBTX
}

func NewSkillRepository(db DBTX) domain.SkillRepository {
	return &skillRepo{db: db}
}

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	if err := row.Scan(&s.ID, &s.Skill, &s.Level, &s.ThemeID); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// Fetch returns every skill ordered by id. Grouping by theme is left to the consumer.
func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, skill, level, theme_id FROM "Skills" ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]domain.Skill, 0)
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Skill, &s.Level, &s.ThemeID); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `SELECT id, skill, level, theme_id FROM "Skills" WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO "Skills" (skill, level, theme_id) VALUES ($1, $2, $3) RETURNING id, skill, level, theme_id`
	return r.db.QueryRow(ctx, query, skill.Skill, skill.Level, skill.ThemeID).
		Scan(&skill.ID, &skill.Skill, &skill.Level, &skill.ThemeID)
}

func (r *skillRepo) Update(ctx context.Context, id int64, patch domain.SkillPatch) (*domain.Skill, error) {
	b := newUpdateBuilder("Skills")
	if patch.Skill != nil {
		b.Set("skill", *patch.Skill)
	}
	if patch.Level != nil {
		b.Set("level", *patch.Level)
	}

	query, args, err := b.Build("id", id, skillColumns...)
	if err != nil {
		return nil, err
	}
	return scanSkill(r.db.QueryRow(ctx, query, args...))
}

func (r *skillRepo) Delete(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `DELETE FROM "Skills" WHERE id = $1 RETURNING id, skill, level, theme_id`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}
