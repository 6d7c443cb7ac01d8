package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// FailureKind classifies why a source attempt produced no usable data
type FailureKind string

const (
	KindTimeout    FailureKind = "timeout"
	KindHTTPStatus FailureKind = "http_status"
	KindNetwork    FailureKind = "network"
	KindParse      FailureKind = "parse"
)

// FetchError is the typed failure of one upstream attempt. It never crosses
// the fetch layer: callers turn it into "try the next source" or "use the
// default value".
type FetchError struct {
	Source string
	Kind   FailureKind
	Status int // HTTP status for KindHTTPStatus, zero otherwise
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == KindHTTPStatus:
		return fmt.Sprintf("%s: upstream returned status %d", e.Source, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Source, e.Kind)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error, network when untyped
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindNetwork
}

// classifyTransport types a transport-level error from the HTTP client
func classifyTransport(source string, err error) *FetchError {
	kind := KindNetwork
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	} else {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			kind = KindTimeout
		}
	}
	return &FetchError{Source: source, Kind: kind, Err: err}
}
