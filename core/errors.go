package core

import "errors"

// Domain errors. Services wrap them with fmt.Errorf("%w") and handlers map
// them back with errors.Is.
var (
	ErrNoEvent           = errors.New("no event selected")
	ErrNameNotFound      = errors.New("name not found")
	ErrRenderFailure     = errors.New("certificate render failed")
	ErrRosterUnavailable = errors.New("roster unavailable")
)
