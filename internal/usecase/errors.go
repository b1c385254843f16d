package usecase

import (
	"errors"

	"skills-api/internal/domain"
	"skills-api/pkg/apperror"
)

// storeError converts a repository failure into the API error taxonomy:
// an empty result becomes NotFound, anything else is Internal.
func storeError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(notFoundMsg)
	}
	return apperror.Internal(err)
}
