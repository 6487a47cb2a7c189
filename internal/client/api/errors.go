package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorClass tags a replay failure so a policy can decide whether
// retrying may ever succeed.
type ErrorClass int

const (
	// ClassUnknown ошибку не удалось классифицировать
	ClassUnknown ErrorClass = iota
	// ClassRetryable сбой транспорта, таймаут, 5xx, 429: повтор может помочь
	ClassRetryable
	// ClassPermanent сервер отверг запрос (4xx), повтор того же запроса не поможет
	ClassPermanent
)

// String returns a lowercase class name for logs and UI.
func (c ErrorClass) String() string {
	switch c {
	case ClassRetryable:
		return "retryable"
	case ClassPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// ReplayError describes a failed attempt to deliver a mutation.
type ReplayError struct {
	Err        error
	Message    string
	StatusCode int // 0 для ошибок транспорта
	Class      ErrorClass
}

func (e *ReplayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps an HTTP status code to an ErrorClass.
func ClassifyStatus(code int) ErrorClass {
	switch {
	case code >= 200 && code < 300:
		return ClassUnknown
	case code == http.StatusRequestTimeout,
		code == http.StatusTooEarly,
		code == http.StatusTooManyRequests,
		code >= 500 && code < 600:
		return ClassRetryable
	case code >= 400 && code < 500:
		return ClassPermanent
	default:
		return ClassUnknown
	}
}

// Classify returns the class of err. Errors that are not a *ReplayError
// are ClassUnknown.
func Classify(err error) ErrorClass {
	var replayErr *ReplayError
	if errors.As(err, &replayErr) {
		return replayErr.Class
	}
	return ClassUnknown
}
