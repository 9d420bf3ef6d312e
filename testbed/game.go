package testbed

import (
	"context"

	"github.com/spaghettifunk/rotor/engine"
	"github.com/spaghettifunk/rotor/engine/core"
)

type CheckGame struct {
	*engine.Game
}

type gameState struct {
	runs       int
	lastReport *Report
	// failOnViolation makes a violated property fail the update.
	failOnViolation bool
}

func NewCheckGame(app *engine.ApplicationConfig) *CheckGame {
	g := &CheckGame{
		Game: &engine.Game{
			ApplicationConfig: app,
			State: &gameState{
				failOnViolation: !app.Watch,
			},
		},
	}

	g.FnInitialize = g.Initialize
	g.FnUpdate = g.Update
	g.FnShutdown = g.Shutdown

	return g
}

func (g *CheckGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *CheckGame) Initialize(cfg *core.Config) error {
	core.LogInfo("property checks ready: precisions %v", cfg.Check.Precisions)
	return nil
}

func (g *CheckGame) Update(ctx context.Context, cfg *core.Config) error {
	report, err := NewRunner(cfg.Check).Run(ctx)
	if err != nil {
		return err
	}
	st := g.state()
	st.runs++
	st.lastReport = report

	if err := report.Err(); err != nil && st.failOnViolation {
		return err
	}
	return nil
}

func (g *CheckGame) Shutdown() error {
	core.LogInfo("property checks finished after %d run(s)", g.state().runs)
	return nil
}

// LastReport returns the report of the latest run, or nil.
func (g *CheckGame) LastReport() *Report {
	return g.state().lastReport
}
