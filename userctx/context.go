package userctx

import (
	"context"

	"github.com/accountapp/accountapp/models"
)

// Context key type
type contextKey string

const actorKey contextKey = "actor"
const RequestIDKey contextKey = "request_id"

// SetActor adds the acting user and client address to request context
func SetActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the actor from request context. Requests without one
// are attributed to "anonymous".
func GetActor(ctx context.Context) models.Actor {
	actor, ok := ctx.Value(actorKey).(models.Actor)
	if !ok || actor.Username == "" {
		actor.Username = "anonymous"
	}
	return actor
}

// HasUser reports whether the request named its user
func HasUser(ctx context.Context) bool {
	actor, ok := ctx.Value(actorKey).(models.Actor)
	return ok && actor.Username != ""
}

// SetRequestID adds the request ID to request context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID retrieves the request ID from request context
func GetRequestID(ctx context.Context) string {
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
