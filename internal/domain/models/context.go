package models

import "context"

type contextKey string

const userContextKey = contextKey("user")

// anonymousUser represents an unauthenticated request.
var anonymousUser = &User{}

func AnonymousUser() *User {
	return anonymousUser
}

func (u *User) IsAnonymous() bool {
	return u == anonymousUser
}

// WithUser returns a copy of ctx carrying the given user.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext retrieves the user from ctx, or nil when absent.
func UserFromContext(ctx context.Context) *User {
	user, ok := ctx.Value(userContextKey).(*User)
	if !ok {
		return nil
	}
	return user
}
