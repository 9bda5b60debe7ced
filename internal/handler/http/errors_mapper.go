package http

import (
	"errors"
	"net/http"

	"github.com/msarvarov/vendor-market/internal/service"
	"github.com/msarvarov/vendor-market/internal/store"
)

// errorStatusMap translates domain errors to HTTP status codes at the
// transport boundary. Client-caused conflicts (duplicate email, duplicate
// firm name) map to 400 rather than 409: the API reports them the same way
// as any other invalid request.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongEmailOrPassword:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrFirmAlreadyExists:  http.StatusBadRequest,
	store.ErrNoVendorWasFound:   http.StatusNotFound,
	store.ErrNoFirmWasFound:     http.StatusNotFound,
	store.ErrNoProductWasFound:  http.StatusNotFound,
	store.ErrImageNotFound:      http.StatusNotFound,
	store.ErrInvalidImageName:   http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
