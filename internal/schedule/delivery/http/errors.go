package http

import (
	"errors"
	"net/http"

	"actionsense/internal/schedule"
	pkgErrors "actionsense/pkg/errors"
)

var (
	errTextRequired     = pkgErrors.NewHTTPError(130001, "text is required")
	errInvalidReference = pkgErrors.NewHTTPError(130002, "reference must be YYYY-MM-DD or RFC3339")
	errInvalidDate      = pkgErrors.NewHTTPError(130003, "date must be YYYY-MM-DD")
	errInvalidClock     = pkgErrors.NewHTTPError(130004, "start and end must be HH:MM")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmptyText):
		return errTextRequired
	case errors.Is(err, schedule.ErrTextTooLong):
		return pkgErrors.NewHTTPError(130005, err.Error())
	case errors.Is(err, schedule.ErrDateRequired):
		return pkgErrors.NewHTTPError(130006, err.Error())
	case errors.Is(err, schedule.ErrInvalidTime):
		return pkgErrors.NewHTTPError(130007, err.Error())
	case errors.Is(err, schedule.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(130008, err.Error())
	case errors.Is(err, schedule.ErrCalendarUnavailable):
		return pkgErrors.NewUnavailableError(130503, err.Error())
	case errors.Is(err, schedule.ErrCalendarFailed):
		return &pkgErrors.HTTPError{Code: 130502, Message: schedule.ErrCalendarFailed.Error(), StatusCode: http.StatusBadGateway}
	default:
		return err
	}
}
