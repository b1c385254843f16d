package usecase

import (
	"context"

	"skills-api/internal/domain"
	"skills-api/pkg/apperror"
	"skills-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const themeNotFound = "Theme not found"

type themeUsecase struct {
	repo     domain.ThemeRepository
	validate *validator.Validate
}

func NewThemeUsecase(repo domain.ThemeRepository, validate *validator.Validate) domain.ThemeUsecase {
	return &themeUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *themeUsecase) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	themes, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return themes, nil
}

func (u *themeUsecase) GetTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	theme, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, themeNotFound)
	}
	return theme, nil
}

func (u *themeUsecase) CreateTheme(ctx context.Context, in domain.ThemeInput) (*domain.Theme, error) {
	theme, err := u.themeFromInput(in)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, theme); err != nil {
		return nil, apperror.Internal(err)
	}
	return theme, nil
}

func (u *themeUsecase) UpdateTheme(ctx context.Context, id int64, in domain.ThemeInput) (*domain.Theme, error) {
	theme, err := u.themeFromInput(in)
	if err != nil {
		return nil, err
	}
	theme.ID = id

	updated, err := u.repo.Update(ctx, theme)
	if err != nil {
		return nil, storeError(err, themeNotFound)
	}
	return updated, nil
}

func (u *themeUsecase) DeleteTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, themeNotFound)
	}
	return deleted, nil
}

func (u *themeUsecase) themeFromInput(in domain.ThemeInput) (*domain.Theme, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, apperror.BadRequest(validation.RequiredFields("name"))
	}

	theme := &domain.Theme{Name: *in.Name}
	if err := u.validate.Struct(theme); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}
	return theme, nil
}
