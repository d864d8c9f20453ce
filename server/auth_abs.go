package server

import (
	"context"

	"github.com/maxsid/memberful-login/memberful/auth"
)

// AuthClient is an auth.Client abstraction.
type AuthClient interface {
	authCodeURLGenerator
	authExchanger
	authRefresher
}

type authExchanger interface {
	Exchange(ctx context.Context, code string) (*auth.Token, error)
}

type authCodeURLGenerator interface {
	AuthCodeURL(state string) string
}

type authRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*auth.Token, error)
}
