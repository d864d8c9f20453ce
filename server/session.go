package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/maxsid/memberful-login/memberful/auth"
)

const (
	sessionKeyOfMemberToken = "member_token"
	sessionKeyOfAuthState   = "auth_state"
)

// sessionGettingStore is a wrap for session.Store object. Implements sessionsGetter.
type sessionGettingStore struct {
	store *session.Store
}

func (s *sessionGettingStore) Get(c *fiber.Ctx) (sessionManager, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: sessionStore contains nil store", ErrInvalidValue)
	}
	return s.store.Get(c)
}

// saveSession saves session if the first parameter of makeSave is true or not specified session will be saved automatically.
// Otherwise all changes will be set and saving have to be done out of the function.
func saveSession(sess sessionSaver, makeSave ...bool) error {
	if len(makeSave) == 0 || len(makeSave) > 0 && makeSave[0] {
		return sess.Save()
	}
	return nil
}

// getSessionToken returns the member token pair held by the session.
// The session is the only holder of token material: the cookie carries just
// the session ID, never the tokens themselves.
func getSessionToken(sess sessionRecordGetter) (*auth.Token, error) {
	tokenInterface := sess.Get(sessionKeyOfMemberToken)
	if tokenInterface == nil {
		return nil, fmt.Errorf("token %w for this session", ErrNotFound)
	} else if token, ok := tokenInterface.(*auth.Token); ok {
		return token, nil
	}
	return nil, fmt.Errorf("%w of member tokenInterface: saved an incorrect data (%T) in user session storage",
		ErrInvalidValue, tokenInterface)
}

// setSessionToken saves the member token pair into user session.
// if makeSave is true or not specified session will be saved automatically.
// Otherwise a token will be set and saving have to be done out of the function.
func setSessionToken(sess sessionRecordSetterSaver, token *auth.Token, makeSave ...bool) error {
	if token == nil || sess == nil {
		return fmt.Errorf("%w of token or session. token=%v, session=%v", ErrInvalidValue, token, sess)
	}
	sess.Set(sessionKeyOfMemberToken, token)
	return saveSession(sess, makeSave...)
}

// compareAuthStates compares user authentication states from session and parameter. Returns true if they're equal.
func compareAuthStates(sess sessionRecordGetter, gotState string) bool {
	if gotState == "" {
		return false
	}
	storeState := sess.Get(sessionKeyOfAuthState)
	return storeState == gotState
}

// setAuthState stores user authentication state into session.
// For deleting record state have to be empty.
// if makeSave is true or not specified a session will be saved automatically.
// Otherwise a state will be set and saving have to be done out of the function.
func setAuthState(sess sessionRecordSetterDeleterSaver, state string, makeSave ...bool) error {
	if state == "" {
		sess.Delete(sessionKeyOfAuthState)
	} else {
		sess.Set(sessionKeyOfAuthState, state)
	}
	return saveSession(sess, makeSave...)
}
