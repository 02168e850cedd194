package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when user input fails business rule validation
// (e.g. missing destination, passenger count below 1). Recoverable: handlers
// should map this to HTTP 422 and let the user correct the input.
var ErrValidation = errors.New("validation error")

// ErrConfiguration is returned when a required credential or setting is
// absent. Fatal for the operation, never retried: fix the deployment.
var ErrConfiguration = errors.New("configuration error")

// Oracle boundary failures. None of these are retried automatically; handlers
// surface them to the user with a generic retry suggestion while the call
// site logs the original detail.
var (
	// ErrOracleUnavailable covers transport-level failures: the oracle
	// endpoint rejected the call or could not be reached.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrOracleTimeout is the client-side deadline expiring before the
	// oracle produced a response.
	ErrOracleTimeout = errors.New("oracle timeout")

	// ErrOracleEmptyResponse means the oracle answered with no parsable
	// payload at all.
	ErrOracleEmptyResponse = errors.New("oracle returned empty response")

	// ErrOracleMalformedResponse means the payload did not decode as the
	// required schema. Never silently recovered.
	ErrOracleMalformedResponse = errors.New("oracle returned malformed response")
)

// ErrIncoherentRoute is returned by the solution validator when the oracle's
// itinerary is structurally invalid (broken segment chain, negative costs,
// wrong terminal city). Treated like an oracle failure for user messaging but
// logged distinctly for diagnosis.
var ErrIncoherentRoute = errors.New("incoherent route")

// ErrInvalidDateFormat is an internal formatting fault: a date string that is
// neither valid ISO ("2006-01-02") nor valid BR ("02/01/06") form. It should
// never reach the user; treat a surfaced occurrence as a defect.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrorCode maps an error to its stable machine-readable code, used both in
// HTTP error envelopes and in the solve-state ErrorKind field. Unrecognized
// errors map to "internal_error".
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConfiguration):
		return "configuration_error"
	case errors.Is(err, ErrOracleUnavailable):
		return "oracle_unavailable"
	case errors.Is(err, ErrOracleTimeout):
		return "oracle_timeout"
	case errors.Is(err, ErrOracleEmptyResponse):
		return "oracle_empty_response"
	case errors.Is(err, ErrOracleMalformedResponse):
		return "oracle_malformed_response"
	case errors.Is(err, ErrIncoherentRoute):
		return "incoherent_route"
	case errors.Is(err, ErrInvalidDateFormat):
		return "invalid_date_format"
	default:
		return "internal_error"
	}
}
