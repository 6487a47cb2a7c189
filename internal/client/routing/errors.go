package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoute routing service answered but returned no usable geometry
	ErrNoRoute = errors.New("no route found")
)

// StatusError is a non-success HTTP answer from the routing service.
// 429 never surfaces as StatusError: it is retried after a cooldown.
type StatusError struct {
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("routing service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("routing service returned status %d: %s", e.StatusCode, e.Body)
}
