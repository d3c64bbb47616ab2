package globals

import (
	"context"

	"bachelorette-db/services/contestants"
)

type key struct{}

type Value struct {
	Config  Config
	Service contestants.Service
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
