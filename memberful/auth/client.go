package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"

	// requestTimeout bounds every outbound call to the authorization server.
	requestTimeout = 15 * time.Second

	stateSize = 32
)

var (
	// anonymous function for unit testing
	timeNow = func() time.Time {
		return time.Now()
	}
)

// Client performs the OAuth2 Authorization Code flow against one
// authorization server: it builds the authorization URL, exchanges the
// one-time code for a token pair and refreshes an expired pair.
type Client struct {
	cred       *Credentials
	httpClient *http.Client
}

func NewClient(cred *Credentials) *Client {
	return &Client{
		cred:       cred,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// AuthCodeURL builds the authorization endpoint URL the user agent must be
// redirected to. The state parameter correlates the request with its
// callback and must be generated fresh per request.
func (c *Client) AuthCodeURL(state string) string {
	v := url.Values{}
	v.Set("response_type", "code")
	v.Set("client_id", c.cred.ClientID)
	v.Set("redirect_uri", c.cred.RedirectURL)
	v.Set("state", state)
	return fmt.Sprintf("%s?%s", c.cred.AuthURL, v.Encode())
}

// Exchange trades an authorization code for a token pair.
// Rejections and malformed responses fail with a ProviderError matching
// ErrExchange, network errors with ErrUpstream.
func (c *Client) Exchange(ctx context.Context, code string) (*Token, error) {
	v := url.Values{}
	v.Set("grant_type", grantAuthorizationCode)
	v.Set("code", code)
	v.Set("redirect_uri", c.cred.RedirectURL)
	v.Set("client_id", c.cred.ClientID)
	v.Set("client_secret", c.cred.ClientSecret)
	return c.tokenRequest(ctx, v, ErrExchange, "")
}

// Refresh trades a refresh token for a new token pair. The returned pair
// carries whichever refresh token the server answered with: the input one
// when the server kept it, a rotated one otherwise.
// Rejections fail with a ProviderError matching ErrRefresh.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	v := url.Values{}
	v.Set("grant_type", grantRefreshToken)
	v.Set("refresh_token", refreshToken)
	v.Set("client_id", c.cred.ClientID)
	v.Set("client_secret", c.cred.ClientSecret)
	return c.tokenRequest(ctx, v, ErrRefresh, refreshToken)
}

// tokenRequest posts the form to the token endpoint and parses the response
// into a Token. currentRefreshToken is kept in the result when the response
// carries no refresh_token of its own.
func (c *Client) tokenRequest(ctx context.Context, form url.Values, kind error, currentRefreshToken string) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cred.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	grant := form.Get("grant_type")
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp)
		return nil, &ProviderError{
			Grant:       grant,
			Code:        errResp.Code,
			Description: errResp.Description,
			Status:      resp.StatusCode,
			kind:        kind,
		}
	}

	var tokenResp tokenResponse
	if err = json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		return nil, &ProviderError{
			Grant:       grant,
			Description: "malformed token response body",
			Status:      resp.StatusCode,
			kind:        kind,
		}
	}

	tok := &Token{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		Expiry:       timeNow().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = currentRefreshToken
	}
	return tok, nil
}

// GenerateState generates a fresh anti-forgery state value for one
// authorization request. Consumed and discarded at callback time.
func GenerateState() string {
	b := make([]byte, stateSize)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", b)
}
