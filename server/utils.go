package server

import (
	"github.com/gofiber/fiber/v2"
)

const (
	oauthGETVariableState = "state"
	oauthGETVariableCode  = "code"
)

// oauthRequestData contains request variables state and code the provider
// appended to the callback redirect.
type oauthRequestData struct {
	State string
	Code  string
}

// getOAuthStateAndCode returns authentication result data from fiber.Ctx GET request.
func getOAuthStateAndCode(c formValueGetter) *oauthRequestData {
	return &oauthRequestData{
		Code:  c.FormValue(oauthGETVariableCode, ""),
		State: c.FormValue(oauthGETVariableState, ""),
	}
}

// generateAuthLink generates URL for provider authentication with state.
func generateAuthLink(generator authCodeURLGenerator, state string) string {
	return generator.AuthCodeURL(state)
}

// mustSession is the same like session.Store.Get(), but executes a panic if got an error.
func mustSession(c *fiber.Ctx, store sessionsGetter) sessionManager {
	sess, err := store.Get(c)
	if err != nil {
		panic(err)
	}
	return sess
}
