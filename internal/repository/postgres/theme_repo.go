package postgres

import (
	"context"

	"skills-api/internal/domain"

	"github.com/jackc/pgx/v5"
)

type themeRepo struct {
	db DBTX
}

func NewThemeRepository(db DBTX) domain.ThemeRepository {
	return &themeRepo{db: db}
}

func scanTheme(row pgx.Row) (*domain.Theme, error) {
	var t domain.Theme
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *themeRepo) Fetch(ctx context.Context) ([]domain.Theme, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM "Themes" ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	themes := make([]domain.Theme, 0)
	for rows.Next() {
		var t domain.Theme
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return themes, nil
}

func (r *themeRepo) GetByID(ctx context.Context, id int64) (*domain.Theme, error) {
	return scanTheme(r.db.QueryRow(ctx, `SELECT id, name FROM "Themes" WHERE id = $1`, id))
}

func (r *themeRepo) Create(ctx context.Context, theme *domain.Theme) error {
	query := `INSERT INTO "Themes" (name) VALUES ($1) RETURNING id, name`
	return r.db.QueryRow(ctx, query, theme.Name).Scan(&theme.ID, &theme.Name)
}

func (r *themeRepo) Update(ctx context.Context, theme *domain.Theme) (*domain.Theme, error) {
	query, args, err := newUpdateBuilder("Themes").
		Set("name", theme.Name).
		Build("id", theme.ID, "id", "name")
	if err != nil {
		return nil, err
	}
	return scanTheme(r.db.QueryRow(ctx, query, args...))
}

func (r *themeRepo) Delete(ctx context.Context, id int64) (*domain.Theme, error) {
	return scanTheme(r.db.QueryRow(ctx, `DELETE FROM "Themes" WHERE id = $1 RETURNING id, name`, id))
}
