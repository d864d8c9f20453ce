package memberful

import "time"

// Member is the normalized member profile returned by the membership API.
// All fields are fetched per request and never cached by this package.
type Member struct {
	ID       string
	Email    string
	FullName string

	Subscriptions []*Subscription
}

// Subscription is one plan subscription of a member.
// ExpiresAt is nil for subscriptions without an expiration date.
type Subscription struct {
	Active    bool
	ExpiresAt *time.Time
	Plan      *Plan
}

// Plan identifies the subscribed plan.
type Plan struct {
	ID   string
	Name string
}
