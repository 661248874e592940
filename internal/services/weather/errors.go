package weather

import "errors"

type FetchErrorKind int

const (
	// KindNotFound is a non-success status from the current-conditions call.
	KindNotFound FetchErrorKind = iota + 1
	// KindProvider is a non-success status from the forecast call.
	KindProvider
	KindTransport
	KindParse
	// KindUnavailable means the circuit breaker is open.
	KindUnavailable
)

var kindMessages = map[FetchErrorKind]string{
	KindNotFound:    "City not found",
	KindProvider:    "Forecast is not available for this city",
	KindTransport:   "Could not reach the weather service",
	KindParse:       "Unexpected response from the weather service",
	KindUnavailable: "Weather service is temporarily unavailable",
}

// FetchError is a failed lookup. Error is safe to show to a user: it never
// includes the request URL, which carries the API key.
type FetchError struct {
	Kind FetchErrorKind
	Op   string
	Err  error
}

func (e *FetchError) Error() string {
	if msg, ok := kindMessages[e.Kind]; ok {
		return msg
	}
	return "weather lookup failed"
}

func (e *FetchError) Message() string { return e.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind FetchErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}
