package engine

import (
	"context"

	"github.com/spaghettifunk/rotor/engine/core"
)

// Game is the workload hosted by the engine. The callbacks receive the
// configuration currently in effect.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnShutdown        Shutdown
}

type Initialize func(cfg *core.Config) error
type Update func(ctx context.Context, cfg *core.Config) error
type Shutdown func() error
