package auth

import "time"

// Credentials holds the OAuth application settings of one Memberful site.
// Immutable for the process lifetime.
type Credentials struct {
	AuthURL  string
	TokenURL string
	APIURL   string

	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Token is a pair of bearer credentials issued by the authorization server.
// AccessToken is short-lived, RefreshToken long-lived. A token obtained by
// refreshing replaces the whole pair: the response may rotate the refresh
// token or keep it, so callers always persist the returned one.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

// Valid reports whether the access token may still be used for requests.
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != "" && timeNow().Before(t.Expiry)
}

// tokenResponse is the token endpoint response body (RFC 6749 section 5.1).
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// tokenErrorResponse is the token endpoint error body (RFC 6749 section 5.2).
type tokenErrorResponse struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}
