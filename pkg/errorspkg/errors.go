// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrUpstream indicates that an external ledger failed or could not be reached.
	ErrUpstream = errors.New("upstream ledger failure")
)
