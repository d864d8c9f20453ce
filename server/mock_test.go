package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/maxsid/memberful-login/memberful"
	"github.com/maxsid/memberful-login/memberful/auth"
)

// --- Errors Mock --- //

type errorsMock struct {
	errors []error
}

func (em *errorsMock) SetNextError(err ...error) {
	if em.errors == nil {
		em.errors = make([]error, 0)
	}
	em.errors = append(em.errors, err...)
}

// nextError returns the first element of em.errors and delete it from slice.
// Works by FIFO principe.
func (em *errorsMock) nextError() (err error) {
	if em == nil || em.errors == nil || len(em.errors) == 0 {
		return nil
	}
	err = em.errors[0]
	em.errors = em.errors[1:]
	return
}

// --- sessionsGetter --- //

type sessionsGetterMockT struct {
	sess sessionManager
	errorsMock
}

func (s *sessionsGetterMockT) Get(_ *fiber.Ctx) (sessionManager, error) {
	if err := s.nextError(); err != nil {
		return nil, err
	}
	return s.sess, nil
}

// ---- session Mock ---- //

type sessionMockT struct {
	*errorsMock
	Data      map[string]interface{}
	SaveCount int
}

func newSessionMock(records map[string]interface{}, err ...error) *sessionMockT {
	if records == nil {
		records = make(map[string]interface{})
	}
	return &sessionMockT{Data: records, errorsMock: &errorsMock{errors: err}}
}

func (s *sessionMockT) Destroy() error {
	if err := s.nextError(); err != nil {
		return err
	}
	s.Data = map[string]interface{}{}
	return nil
}

func (s *sessionMockT) Get(key string) (v interface{}) {
	v, _ = s.Data[key]
	return
}

func (s *sessionMockT) Set(key string, value interface{}) {
	s.Data[key] = value
}

func (s *sessionMockT) Save() error {
	if err := s.nextError(); err != nil {
		return err
	}
	s.SaveCount++
	return nil
}

func (s *sessionMockT) Delete(key string) {
	delete(s.Data, key)
}

func (s *sessionMockT) IsRecordExist(key string) bool {
	_, ok := s.Data[key]
	return ok
}

// ---- AuthClient Mock ---- //

type authClientMockT struct {
	errorsMock
	tokens        []*auth.Token // FIFO results for Exchange and Refresh
	RefreshCalls  int
	ExchangeCalls int
}

func newAuthClientMock(tokens ...*auth.Token) *authClientMockT {
	return &authClientMockT{tokens: tokens}
}

func (a *authClientMockT) nextToken() (*auth.Token, error) {
	if err := a.nextError(); err != nil {
		return nil, err
	}
	if len(a.tokens) == 0 {
		return nil, errors.New("authClientMockT has no token configured")
	}
	tok := a.tokens[0]
	a.tokens = a.tokens[1:]
	return tok, nil
}

func (a *authClientMockT) AuthCodeURL(state string) string {
	return fmt.Sprintf("https://example.memberful.com/oauth?state=%s", state)
}

func (a *authClientMockT) Exchange(_ context.Context, _ string) (*auth.Token, error) {
	a.ExchangeCalls++
	return a.nextToken()
}

func (a *authClientMockT) Refresh(_ context.Context, _ string) (*auth.Token, error) {
	a.RefreshCalls++
	return a.nextToken()
}

// ---- member Service Mock ---- //

type memberServiceMockT struct {
	errorsMock
	members    []*memberful.Member // FIFO results for CurrentMember
	FetchCalls int
}

func newMemberServiceMock(members ...*memberful.Member) *memberServiceMockT {
	return &memberServiceMockT{members: members}
}

func (m *memberServiceMockT) CurrentMember(_ context.Context, _ *auth.Token) (*memberful.Member, error) {
	m.FetchCalls++
	if err := m.nextError(); err != nil {
		return nil, err
	}
	if len(m.members) == 0 {
		return nil, errors.New("memberServiceMockT has no member configured")
	}
	member := m.members[0]
	m.members = m.members[1:]
	return member, nil
}
