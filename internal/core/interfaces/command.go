package interfaces

import (
	"context"
)

// Command is a user intent forwarded from the presentation layer into the
// core, parameterized by the update type that carries it.
type Command[T any] interface {
	Execute(ctx context.Context, args T)
}
