package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/maxsid/memberful-login/memberful"
	"github.com/maxsid/memberful-login/memberful/auth"
)

// memberQuery is the fixed field selection of the profile fetch. The parsed
// Member mirrors exactly these fields, nothing more.
const memberQuery = `{currentMember{id email fullName subscriptions{active expiresAt plan{id name}}}}`

// requestTimeout bounds every outbound call to the membership API.
const requestTimeout = 15 * time.Second

type memberService struct {
	apiURL     string
	httpClient *http.Client
}

func NewMemberService(apiURL string) memberful.Service {
	return &memberService{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// wireMember is the profile payload of the membership API.
type wireMember struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Subscriptions []struct {
		Active    bool   `json:"active"`
		ExpiresAt *int64 `json:"expiresAt"`
		Plan      struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"plan"`
	} `json:"subscriptions"`
}

type memberEnvelope struct {
	CurrentMember *wireMember `json:"currentMember"`
}

func (m *memberService) CurrentMember(ctx context.Context, token *auth.Token) (*memberful.Member, error) {
	if !token.Valid() {
		return nil, fmt.Errorf("%w: access token is missing or expired", memberful.ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.memberRequestURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", memberful.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: access token rejected", memberful.ErrUnauthorized)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", memberful.ErrUpstream, resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", memberful.ErrUpstream, err)
	}
	var envelope memberEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil || envelope.CurrentMember == nil {
		return nil, fmt.Errorf("%w: malformed member response body", memberful.ErrUpstream)
	}
	return memberFromWire(envelope.CurrentMember), nil
}

func (m *memberService) memberRequestURL() string {
	v := url.Values{}
	v.Set("query", memberQuery)
	return fmt.Sprintf("%s?%s", m.apiURL, v.Encode())
}

func memberFromWire(wire *wireMember) *memberful.Member {
	member := &memberful.Member{
		ID:            wire.ID,
		Email:         wire.Email,
		FullName:      wire.FullName,
		Subscriptions: make([]*memberful.Subscription, 0, len(wire.Subscriptions)),
	}
	for _, s := range wire.Subscriptions {
		sub := &memberful.Subscription{
			Active: s.Active,
			Plan:   &memberful.Plan{ID: s.Plan.ID, Name: s.Plan.Name},
		}
		if s.ExpiresAt != nil {
			expiresAt := time.Unix(*s.ExpiresAt, 0).UTC()
			sub.ExpiresAt = &expiresAt
		}
		member.Subscriptions = append(member.Subscriptions, sub)
	}
	return member
}
