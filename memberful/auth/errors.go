package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrStateMismatch reports a callback whose state parameter does not
	// match the issued one. A possible forged callback: the flow must be
	// restarted and the state value never reused.
	ErrStateMismatch = errors.New("authorization state mismatch")
	// ErrExchange reports a rejected authorization code exchange.
	ErrExchange = errors.New("authorization code exchange failed")
	// ErrRefresh reports a rejected refresh token. Terminal for a session:
	// the caller must restart the whole authorization flow.
	ErrRefresh = errors.New("token refresh failed")
	// ErrUpstream reports a network error or timeout talking to the
	// authorization server. Retry is left to the caller.
	ErrUpstream = errors.New("authorization server unreachable")
)

// ProviderError is a token endpoint rejection. Code and Description carry
// the provider's error payload when it sent one. Matches ErrExchange or
// ErrRefresh with errors.Is depending on the failed grant.
type ProviderError struct {
	Grant       string
	Code        string
	Description string
	Status      int

	kind error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%v: grant %q, status %d", e.kind, e.Grant, e.Status)
	if e.Code != "" {
		msg = fmt.Sprintf("%s, %s", msg, e.Code)
	}
	if e.Description != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Description)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.kind
}
