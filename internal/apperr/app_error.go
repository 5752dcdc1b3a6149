package apperr

import "github.com/tvmai/merchant-admin/pkg/zerror"

const (
	ValidationErrorCode       = "VALIDATION_FAILED"
	UnauthorizedErrorCode     = "UNAUTHORIZED"
	ProductIntegrityErrorCode = "PRODUCT_INTEGRITY_VIOLATION"
	GatewayUnavailableCode    = "GATEWAY_UNAVAILABLE"
	GatewayTimeoutCode        = "GATEWAY_TIMEOUT"
	PriceUpdateFailedCode     = "PRICE_UPDATE_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	// AuthErr means the authenticated client provider could not establish
	// an authorized gateway session. Fatal for the request.
	AuthErr = zerror.NewUnauthorized(UnauthorizedErrorCode, "not authorized for the commerce gateway")

	// ProductIntegrityErr means the gateway reported success but returned a
	// shape the workflow cannot use (e.g. a product without variants).
	ProductIntegrityErr = zerror.NewInternalServerError(ProductIntegrityErrorCode, "gateway returned an unusable product")

	// GatewayUnavailableErr covers network and response-parsing faults on
	// either gateway call.
	GatewayUnavailableErr = zerror.NewBadGateway(GatewayUnavailableCode, "failed to reach the commerce gateway")

	// GatewayTimeoutErr means a gateway call ran past its per-call deadline.
	GatewayTimeoutErr = zerror.NewTimeout(GatewayTimeoutCode, "commerce gateway call timed out")

	// PriceUpdateFailedErr marks a partial success: the product was created
	// but the follow-up price update did not land.
	PriceUpdateFailedErr = zerror.NewBadGateway(PriceUpdateFailedCode, "product created but price update failed")
)
