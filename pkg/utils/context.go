package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ActorKey contextKey = "actor"
	TokenKey contextKey = "token"
)

// Actor is the authenticated caller resolved from the bearer token. It is
// passed explicitly through the request context and down into services, so
// authorization never depends on hidden global state.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func SetActorContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	return context.WithValue(ctx, ActorKey, Actor{UserID: userID, Role: role})
}

func GetActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(Actor)
	if !ok || actor.UserID == uuid.Nil {
		return Actor{}, false
	}
	return actor, true
}

// GetTokenFromContext returns the raw bearer token for the request
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// SetTokenContext stores the raw bearer token in the context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
