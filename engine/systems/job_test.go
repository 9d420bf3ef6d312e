package systems

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemRejects(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsEveryJob(t *testing.T) {
	js, err := NewJobSystem(4, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, js.Workers())

	var ran, completed, failed atomic.Int64
	boom := errors.New("boom")

	for i := 0; i < 100; i++ {
		js.Submit(JobTask{
			Run: func() error {
				ran.Add(1)
				if i%10 == 0 {
					return boom
				}
				return nil
			},
			OnComplete: func() { completed.Add(1) },
			OnFailure: func(err error) {
				assert.ErrorIs(t, err, boom)
				failed.Add(1)
			},
		})
	}
	require.NoError(t, js.Shutdown())

	assert.Equal(t, int64(100), ran.Load())
	assert.Equal(t, int64(90), completed.Load())
	assert.Equal(t, int64(10), failed.Load())

	// Shutting down twice is harmless.
	require.NoError(t, js.Shutdown())
}

func TestJobSystemNonBlocking(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		js.AddWorkNonBlocking(JobTask{
			Run:        func() error { return nil },
			OnComplete: wg.Done,
		})
	}
	wg.Wait()
	require.NoError(t, js.Shutdown())
}
