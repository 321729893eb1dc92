package infra

import (
	"errors"
	"log/slog"

	"hoster-calendar/internal/pkg/errs"
)

type UpstreamErrorKind string

type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int // HTTP status when the upstream answered, 0 otherwise
	msg    string
	err    error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

// Transient reports whether the failure counts against the circuit breaker.
// The upstream rejecting a request (4xx) says nothing about its health.
func (e UpstreamError) Transient() bool {
	switch e.Kind {
	case KindUnavailable:
		return true
	case KindBadStatus:
		return e.Status >= 500
	default:
		return false
	}
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Upstream error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound    UpstreamErrorKind = "NOT_FOUND"
	KindUnavailable UpstreamErrorKind = "UPSTREAM_UNAVAILABLE"
	KindBadStatus   UpstreamErrorKind = "UPSTREAM_BAD_STATUS"
	KindDecode      UpstreamErrorKind = "UPSTREAM_DECODE"
)
