package memberful

import "errors"

var (
	// ErrUnauthorized reports an expired or revoked access token.
	// The caller may refresh the token and retry the request once.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream reports any other failure of the membership API:
	// network error, timeout, unexpected status or malformed body.
	ErrUpstream = errors.New("membership api error")
)
