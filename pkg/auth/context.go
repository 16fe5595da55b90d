package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyUserID is the context key for the authenticated identity provider user id
	ContextKeyUserID contextKey = "user_id"
	// ContextKeyAccessToken is the context key for the verified raw access token
	ContextKeyAccessToken contextKey = "access_token"
)

// WithUserID adds the user ID to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserIDFromContext retrieves the user ID from the context
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(string)
	return id, ok && id != ""
}

// WithAccessToken adds the verified access token to the context
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextKeyAccessToken, token)
}

// AccessTokenFromContext retrieves the verified access token from the context
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ContextKeyAccessToken).(string)
	return token, ok && token != ""
}
