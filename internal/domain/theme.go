package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Theme is a named category that skills belong to.
type Theme struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"not_blank"`
}

// ThemeInput is the body accepted by create and update.
type ThemeInput struct {
	Name *string `json:"name"`
}

type ThemeRepository interface {
	Fetch(ctx context.Context) ([]Theme, error)
	GetByID(ctx context.Context, id int64) (*Theme, error)
	// Create inserts the theme and fills in its store-assigned ID.
	Create(ctx context.Context, theme *Theme) error
	// Update rewrites the name and returns the stored row, or ErrNotFound.
	Update(ctx context.Context, theme *Theme) (*Theme, error)
	// Delete removes the row and returns its prior values, or ErrNotFound.
	Delete(ctx context.Context, id int64) (*Theme, error)
}

type ThemeUsecase interface {
	ListThemes(ctx context.Context) ([]Theme, error)
	GetTheme(ctx context.Context, id int64) (*Theme, error)
	CreateTheme(ctx context.Context, in ThemeInput) (*Theme, error)
	UpdateTheme(ctx context.Context, id int64, in ThemeInput) (*Theme, error)
	DeleteTheme(ctx context.Context, id int64) (*Theme, error)
}
