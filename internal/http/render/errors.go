package render

import (
	"errors"
	"net/http"

	"github.com/tvmai/merchant-admin/pkg/zerror"
)

// StatusFromError maps a classified error onto the HTTP status of the
// rendered page. Anything unclassified is an internal server error.
func StatusFromError(err error) int {
	var zErr zerror.ZError
	if !errors.As(err, &zErr) {
		return http.StatusInternalServerError
	}

	switch zErr.Status() {
	case zerror.StatusUnauthorized:
		return http.StatusUnauthorized
	case zerror.StatusValidationFailed:
		return http.StatusUnprocessableEntity
	case zerror.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case zerror.StatusTimeout:
		return http.StatusGatewayTimeout
	case zerror.StatusBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
