package contextx

import "context"

// SystemActorID is recorded in audit fields when no actor is known.
const SystemActorID = "system"

// WithActorID returns a copy of ctx identifying who performs the operation.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// ActorIDFromContext returns the actor stored in ctx, or SystemActorID.
func ActorIDFromContext(ctx context.Context) string {
	actorID, ok := ctx.Value(actorIDKey).(string)
	if !ok || actorID == "" {
		return SystemActorID
	}
	return actorID
}
