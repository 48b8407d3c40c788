package service

import (
	"errors"

	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/response"
)

// toAppError maps repository and domain errors onto the response taxonomy.
// AppErrors pass through unchanged.
func toAppError(err error, notFoundMessage, internalMessage string) error {
	if err == nil {
		return nil
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return response.NewFieldError(fieldErr.Field, fieldErr.Message)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(notFoundMessage, "")
	}

	return response.NewAppError(response.ErrCodeInternal, internalMessage, err.Error())
}
