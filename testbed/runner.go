package testbed

import (
	"context"
	"errors"
	"fmt"
	gomath "math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/rotor/engine/core"
	"github.com/spaghettifunk/rotor/engine/systems"
)

const (
	Float32 = "float32"
	Float64 = "float64"
)

// tolerances holds the largest acceptable sample error per precision.
var tolerances = map[string]float64{
	Float32: 1e-4,
	Float64: 1e-9,
}

type Result struct {
	Property   string
	Precision  string
	Samples    int
	WorstError float64
	Tolerance  float64
	Elapsed    time.Duration
}

// Passed is false when the worst error exceeds the tolerance or is NaN.
func (r Result) Passed() bool {
	return r.WorstError <= r.Tolerance
}

type Report struct {
	RunID      uuid.UUID
	Seed       uint64
	Results    []Result
	Elapsed    time.Duration
	Throughput float64
}

func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Err joins one error per failed property, each wrapping
// core.ErrPropertyViolated.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s/%s: worst error %g exceeds %g: %w",
			res.Precision, res.Property, res.WorstError, res.Tolerance, core.ErrPropertyViolated))
	}
	return errors.Join(errs...)
}

type Runner struct {
	samples    int
	seed       uint64
	precisions []string
	workers    int
	metrics    *core.Metrics
}

func NewRunner(cfg core.CheckConfig) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		samples:    cfg.Samples,
		seed:       cfg.Seed,
		precisions: cfg.Precisions,
		workers:    workers,
		metrics:    core.NewMetrics(),
	}
}

type checkJob struct {
	prop      property
	precision string
	seed      uint64
}

func (r *Runner) jobs() ([]checkJob, error) {
	var jobs []checkJob
	for _, precision := range r.precisions {
		var props []property
		switch precision {
		case Float32:
			props = properties[float32]()
		case Float64:
			props = properties[float64]()
		default:
			return nil, fmt.Errorf("unknown precision %q: %w", precision, core.ErrInvalidConfig)
		}
		for i, p := range props {
			jobs = append(jobs, checkJob{prop: p, precision: precision, seed: r.seed + uint64(i)})
		}
	}
	return jobs, nil
}

// Run checks every property at every configured precision on a pool of
// workers. Each property draws from its own generator seeded from the run
// seed, so results do not depend on scheduling. A cancelled context skips
// the checks that have not started yet.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	jobs, err := r.jobs()
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:   uuid.New(),
		Seed:    r.seed,
		Results: make([]Result, len(jobs)),
	}
	core.LogInfo("run %s: %d samples per property, seed %d, %d workers", report.RunID, r.samples, r.seed, r.workers)

	pool, err := systems.NewJobSystem(r.workers, len(jobs))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	for i, job := range jobs {
		pool.Submit(systems.JobTask{
			Run: func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				report.Results[i] = r.check(job.prop, job.precision, job.seed)
				return nil
			},
			OnComplete: func() {
				res := report.Results[i]
				if res.Passed() {
					core.LogDebug("%s/%s ok: worst error %g", res.Precision, res.Property, res.WorstError)
				} else {
					core.LogWarn("%s/%s violated: worst error %g > %g", res.Precision, res.Property, res.WorstError, res.Tolerance)
				}
			},
		})
	}
	if err := pool.Shutdown(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.Elapsed = time.Since(start)

	for _, res := range report.Results {
		r.metrics.Update(res.Elapsed.Seconds(), res.Samples)
	}
	report.Throughput = r.metrics.Throughput()

	core.LogInfo("run %s: %d checks, %d failed, %.0f samples/s",
		report.RunID, len(report.Results), len(report.Failed()), report.Throughput)
	return report, nil
}

// check runs on a pool worker. It only touches its own generator and clock.
func (r *Runner) check(p property, precision string, seed uint64) Result {
	rng := rand.New(rand.NewSource(seed))
	clock := core.NewClock()

	clock.Start()
	worst := 0.0
	for i := 0; i < r.samples; i++ {
		e := p.check(rng)
		if gomath.IsNaN(e) {
			worst = gomath.Inf(1)
			continue
		}
		worst = max(worst, e)
	}
	clock.Stop()

	return Result{
		Property:   p.name,
		Precision:  precision,
		Samples:    r.samples,
		WorstError: worst,
		Tolerance:  tolerances[precision],
		Elapsed:    clock.Elapsed(),
	}
}
