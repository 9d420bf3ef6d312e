/*
Rotor checks the rotation algebra of the math package: every property is
sampled at every configured precision and the run fails on any violation.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/rotor/engine"
	"github.com/spaghettifunk/rotor/engine/core"
	"github.com/spaghettifunk/rotor/testbed"
)

func main() {
	app := &engine.ApplicationConfig{Name: "rotor"}
	flag.StringVar(&app.ConfigPath, "config", "", "TOML or YAML configuration file")
	flag.BoolVar(&app.Watch, "watch", false, "re-run the checks whenever the config file changes")
	flag.IntVar(&app.Samples, "samples", 0, "samples per property, overrides the config")
	flag.Uint64Var(&app.Seed, "seed", 0, "random seed, overrides the config")
	flag.IntVar(&app.Workers, "workers", 0, "size of the check pool, overrides the config")
	flag.StringVar(&app.LogLevel, "log-level", "", "debug, info, warn or error")
	flag.Parse()

	tb := testbed.NewCheckGame(app)

	engine, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("%v", err)
	}

	if err := engine.Initialize(); err != nil {
		core.LogFatal("%v", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		_ = engine.Shutdown()
	}()

	runErr := engine.Run()
	if !app.Watch {
		_ = engine.Shutdown()
	}
	if runErr != nil {
		core.LogFatal("%v", runErr)
	}
	if report := tb.LastReport(); report != nil && report.Err() != nil {
		os.Exit(1)
	}
}
