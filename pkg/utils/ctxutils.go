package utils

import (
	"context"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/pkg/contextkeys"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

func ContextWithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, contextkeys.ActorKey, actor)
}

func GetActorFromCtx(ctx context.Context) (entities.Actor, error) {
	actor, ok := ctx.Value(contextkeys.ActorKey).(entities.Actor)
	if !ok {
		return entities.Actor{}, apperrors.ErrActorNotFoundInContext
	}
	return actor, nil
}
