package zerror

// Status classifies an error independently of any transport. The HTTP
// layer decides how each status is rendered.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusUnauthorized
	StatusValidationFailed
	StatusUnprocessableEntity
	StatusInternalServerError
	StatusTimeout
	StatusBadGateway
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnauthorized:
		return "UNAUTHORIZED"
	case StatusValidationFailed:
		return "VALIDATION_FAILED"
	case StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusBadGateway:
		return "BAD_GATEWAY"
	default:
		return "UNKNOWN"
	}
}
