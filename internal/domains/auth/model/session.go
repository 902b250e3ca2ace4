package model

import (
	"context"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"slices"
	"strings"
	"time"
)

const EntityName = "session"

// Account is what the remote API answers to a successful sign in.
type Account struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Registration is forwarded as is to the remote sign up endpoint.
type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

// Session is the signed in user. It is created by sign in, dropped by sign
// out, and handed explicitly to every operation that calls the remote API.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewSession(account Account, expiresAt time.Time) Session {
	return Session{
		Token:     account.Token,
		UserID:    account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Role:      account.Role,
		ExpiresAt: expiresAt,
	}
}

func (s Session) IsAdmin() bool {
	return slices.Contains([]string{constant.RoleAdmin, constant.RoleSpringAdmin}, strings.ToUpper(s.Role))
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, s)
}

// FromContext returns the session placed by the auth middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(constant.ContextKeySession).(Session)

	return s, ok
}

// RequireSession is FromContext for handlers that cannot run anonymously.
func RequireSession(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return s, failure.Unauthorized(failure.MessageAuth)
	}

	return s, nil
}
