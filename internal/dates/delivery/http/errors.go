package http

import (
	"errors"

	"actionsense/internal/dates"
	pkgErrors "actionsense/pkg/errors"
)

var errTextRequired = pkgErrors.NewHTTPError(110001, "text is required")

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors are returned unchanged and rendered as internal errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dates.ErrInvalidReference):
		return pkgErrors.NewHTTPError(110002, err.Error())
	case errors.Is(err, dates.ErrTextTooLong):
		return pkgErrors.NewHTTPError(110003, err.Error())
	default:
		return err
	}
}
