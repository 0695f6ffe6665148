// Package upstream holds the error taxonomy shared by the HTTP API clients.
package upstream

import "errors"

// ErrNotFound reports that an upstream API confirmed the requested identity
// does not exist. Callers match it with errors.Is to pick the
// user-correctable apology; every other client error is an upstream failure
// whose detail belongs in the operator log, never in chat.
var ErrNotFound = errors.New("not found")
