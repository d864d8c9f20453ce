package memberful

import (
	"context"

	"github.com/maxsid/memberful-login/memberful/auth"
)

type Service interface {
	MemberGetter
}

type MemberGetter interface {
	// CurrentMember fetches the profile of the member the token belongs to.
	// An expired or revoked access token fails with ErrUnauthorized.
	CurrentMember(ctx context.Context, token *auth.Token) (*Member, error)
}
