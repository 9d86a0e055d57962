package http

import (
	"errors"

	"actionsense/internal/actionsense"
	pkgErrors "actionsense/pkg/errors"
)

var (
	errTextRequired     = pkgErrors.NewHTTPError(120001, "text is required")
	errInvalidReference = pkgErrors.NewHTTPError(120002, "reference must be YYYY-MM-DD or RFC3339")
	errInvalidDueDate   = pkgErrors.NewHTTPError(120003, "due_date must be YYYY-MM-DD")
	errIDRequired       = pkgErrors.NewHTTPError(120004, "id is required")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged and rendered as internal errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, actionsense.ErrTaskNotFound):
		return pkgErrors.NewNotFoundError(120404, err.Error())
	case errors.Is(err, actionsense.ErrEmptyText):
		return errTextRequired
	case errors.Is(err, actionsense.ErrTextTooLong):
		return pkgErrors.NewHTTPError(120005, err.Error())
	case errors.Is(err, actionsense.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(120006, err.Error())
	case errors.Is(err, actionsense.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(120007, err.Error())
	case errors.Is(err, actionsense.ErrInvalidProgress):
		return pkgErrors.NewHTTPError(120008, err.Error())
	case errors.Is(err, actionsense.ErrTitleTooLong):
		return pkgErrors.NewHTTPError(120009, err.Error())
	default:
		return err
	}
}
