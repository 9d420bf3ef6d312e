package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/rotor/engine/core"
	"github.com/spaghettifunk/rotor/engine/math"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

var ErrInvalidStage = errors.New("engine is not in the expected stage")

type Engine struct {
	mutex        sync.Mutex
	currentStage Stage
	gameInstance *Game
	config       *core.Config
	watcher      *core.ConfigWatcher
	reload       chan *core.Config
	ctx          context.Context
	cancel       context.CancelFunc
	clock        *core.Clock
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game and application config are required: %w", core.ErrInvalidConfig)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		reload:       make(chan *core.Config, 1),
		ctx:          ctx,
		cancel:       cancel,
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

func (e *Engine) setStage(s Stage) {
	e.mutex.Lock()
	e.currentStage = s
	e.mutex.Unlock()
}

// Config returns the configuration currently in effect.
func (e *Engine) Config() *core.Config {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.config
}

func (e *Engine) Initialize() error {
	if e.Stage() != EngineStageUninitialized {
		return fmt.Errorf("initialize in stage %s: %w", e.Stage(), ErrInvalidStage)
	}
	e.setStage(EngineStageInitializing)

	app := e.gameInstance.ApplicationConfig
	cfg := core.DefaultConfig()
	if app.ConfigPath != "" {
		loaded, err := core.LoadConfig(app.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	e.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := e.apply(cfg); err != nil {
		return err
	}

	if app.Watch {
		if app.ConfigPath == "" {
			return fmt.Errorf("watch requires a config file: %w", core.ErrInvalidConfig)
		}
		w, err := core.NewConfigWatcher(app.ConfigPath, func(c *core.Config) {
			e.applyOverrides(c)
			// Keep only the newest pending config.
			select {
			case <-e.reload:
			default:
			}
			e.reload <- c
		})
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		e.watcher = w
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(cfg); err != nil {
			return err
		}
	}

	e.setStage(EngineStageInitialized)
	core.LogInfo("%s initialized", app.Name)
	return nil
}

// applyOverrides lays the command line values over cfg.
func (e *Engine) applyOverrides(cfg *core.Config) {
	app := e.gameInstance.ApplicationConfig
	if app.Samples > 0 {
		cfg.Check.Samples = app.Samples
	}
	if app.Seed != 0 {
		cfg.Check.Seed = app.Seed
	}
	if app.Workers > 0 {
		cfg.Check.Workers = app.Workers
	}
	if app.LogLevel != "" {
		cfg.Log.Level = app.LogLevel
	}
}

// apply pushes cfg into the logger and the math tolerances.
func (e *Engine) apply(cfg *core.Config) error {
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	if err := math.SetTolerances(math.Tolerances{
		Epsilon:        cfg.Math.Epsilon,
		SlerpThreshold: cfg.Math.SlerpThreshold,
	}); err != nil {
		return err
	}
	e.mutex.Lock()
	e.config = cfg
	e.mutex.Unlock()
	return nil
}

// Run performs one update. In watch mode it then performs another update
// for every config change until Shutdown is called.
func (e *Engine) Run() error {
	if e.Stage() != EngineStageInitialized {
		return fmt.Errorf("run in stage %s: %w", e.Stage(), ErrInvalidStage)
	}
	e.setStage(EngineStageRunning)

	if err := e.update(); err != nil && e.watcher == nil {
		return err
	}
	if e.watcher == nil {
		return nil
	}

	core.LogInfo("watching %s for changes", e.gameInstance.ApplicationConfig.ConfigPath)
	for {
		select {
		case cfg := <-e.reload:
			if err := e.apply(cfg); err != nil {
				core.LogError("rejected config: %v", err)
				continue
			}
			_ = e.update()

		case err := <-e.watcher.Errors():
			core.LogWarn("config watcher: %v", err)

		case <-e.ctx.Done():
			return nil
		}
	}
}

func (e *Engine) update() error {
	if e.gameInstance.FnUpdate == nil {
		return nil
	}
	e.clock.Start()
	err := e.gameInstance.FnUpdate(e.ctx, e.Config())
	e.clock.Stop()
	if err != nil {
		core.LogError("update failed after %s: %v", e.clock.Elapsed(), err)
		return err
	}
	core.LogDebug("update completed in %s", e.clock.Elapsed())
	return nil
}

func (e *Engine) Shutdown() error {
	e.setStage(EngineStageShuttingDown)
	e.cancel()

	var errs []error
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil && !errors.Is(err, core.ErrWatcherClosed) {
			errs = append(errs, err)
		}
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
