package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"github.com/maxsid/memberful-login/memberful/auth"
)

// authClient groups the protocol operations the CLI mode needs.
type authClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.Token, error)
}

// ensureToken returns a usable token pair: the cached one while it is still
// valid, a refreshed one when it expired, or a new pair from the web flow
// when there is nothing to refresh.
func ensureToken(ctx context.Context, client authClient, configDir string) (*auth.Token, error) {
	cacheFile, err := tokenCacheFile(configDir)
	if err != nil {
		return nil, err
	}
	tok, err := tokenFromFile(cacheFile)
	if err == nil && tok.Valid() {
		return tok, nil
	}
	if err == nil && tok.RefreshToken != "" {
		refreshed, refreshErr := client.Refresh(ctx, tok.RefreshToken)
		if refreshErr == nil {
			saveToken(cacheFile, refreshed)
			return refreshed, nil
		}
		log.Printf("Cached token could not be refreshed, starting a new sign in: %v", refreshErr)
	}

	tok = getTokenFromWeb(ctx, client)
	saveToken(cacheFile, tok)
	return tok, nil
}

// refreshCached refreshes the token pair and replaces the cached one with
// whichever refresh token the server answered with.
func refreshCached(ctx context.Context, client authClient, configDir string, tok *auth.Token) (*auth.Token, error) {
	refreshed, err := client.Refresh(ctx, tok.RefreshToken)
	if err != nil {
		return nil, err
	}
	if cacheFile, fileErr := tokenCacheFile(configDir); fileErr == nil {
		saveToken(cacheFile, refreshed)
	}
	return refreshed, nil
}

// getTokenFromWeb drives the authorization code flow by hand: the user opens
// the printed link in a browser and pastes the redirect URL back.
// It returns the retrieved Token.
func getTokenFromWeb(ctx context.Context, client authClient) *auth.Token {
	state := auth.GenerateState()
	fmt.Printf("Go to the following link in your browser, sign in and paste "+
		"the address you were redirected to: \n%v\n", client.AuthCodeURL(state))

	var pasted string
	if _, err := fmt.Scan(&pasted); err != nil {
		log.Fatalf("Unable to read the redirect address %v", err)
	}
	code, gotState, err := codeAndStateFromRedirectURL(pasted)
	if err != nil {
		log.Fatalf("Unable to parse the redirect address %v", err)
	}
	if gotState != state {
		log.Fatalf("%v: start the sign in over", auth.ErrStateMismatch)
	}

	tok, err := client.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Unable to retrieve token from web %v", err)
	}
	return tok
}

// codeAndStateFromRedirectURL extracts the one-time code and state the
// provider appended to the redirect URL.
func codeAndStateFromRedirectURL(rawurl string) (code, state string, err error) {
	parsed, err := url.Parse(rawurl)
	if err != nil {
		return "", "", err
	}
	query := parsed.Query()
	if query.Get("code") == "" {
		return "", "", fmt.Errorf("redirect url %q carries no code parameter", rawurl)
	}
	return query.Get("code"), query.Get("state"), nil
}

// tokenCacheFile generates credential file path/filename.
// It returns the generated credential path/filename.
func tokenCacheFile(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0760); err != nil {
		return "", err
	}
	return filepath.Join(configDir, url.QueryEscape("memberful-token.json")), nil
}

// tokenFromFile retrieves a Token from a given file path.
// It returns the retrieved Token and any read error encountered.
func tokenFromFile(file string) (*auth.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	t := &auth.Token{}
	err = json.NewDecoder(f).Decode(t)
	defer f.Close()
	return t, err
}

// saveToken uses a file path to create a file and store the
// token in it.
func saveToken(file string, token *auth.Token) {
	fmt.Printf("Saving credential file to: %s\n", file)
	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Unable to cache oauth token: %v", err)
	}
	defer f.Close()
	_ = json.NewEncoder(f).Encode(token)
}
