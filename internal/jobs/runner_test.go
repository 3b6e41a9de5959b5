package jobs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunAll(t *testing.T) {
	runner := NewRunner()

	results := make([]int, 10)
	tasks := make([]Task, len(results))
	for i := range tasks {
		tasks[i] = Task{
			Name: fmt.Sprintf("square-%d", i),
			Run: func(ctx context.Context) error {
				results[i] = i * i
				return nil
			},
		}
	}

	require.NoError(t, runner.RunAll(context.Background(), tasks))
	for i, got := range results {
		if got != i*i {
			t.Errorf("Expected results[%d] = %d, got %d", i, i*i, got)
		}
	}

	metrics := runner.GetMetrics()
	assert.Equal(t, int64(10), metrics.TasksStarted)
	assert.Equal(t, int64(10), metrics.TasksCompleted)
	assert.Equal(t, int64(0), metrics.TasksFailed)
	assert.NotEmpty(t, metrics.SlowestTask)
	assert.Equal(t, 1.0, runner.GetSuccessRate())
}

func TestRunner_StopsAtFirstError(t *testing.T) {
	runner := NewRunner()
	boom := errors.New("boom")

	ran := 0
	tasks := []Task{
		{Name: "ok", Run: func(ctx context.Context) error { ran++; return nil }},
		{Name: "fails", Run: func(ctx context.Context) error { ran++; return boom }},
		{Name: "later", Run: func(ctx context.Context) error { ran++; return nil }},
	}

	err := runner.RunAll(context.Background(), tasks)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "fails")
	assert.Equal(t, 2, ran, "tasks after a failure are not run")
	assert.Equal(t, int64(1), runner.GetMetrics().TasksFailed)
	assert.Less(t, runner.GetSuccessRate(), 1.0)
}

func TestRunner_CancelledContext(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := 0
	tasks := []Task{
		{Name: "a", Run: func(ctx context.Context) error { ran++; return nil }},
		{Name: "b", Run: func(ctx context.Context) error { ran++; return nil }},
	}
	err := runner.RunAll(ctx, tasks)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), "task a not started")
	assert.Equal(t, 0, ran)
}

func TestRunner_Empty(t *testing.T) {
	runner := NewRunner()
	assert.NoError(t, runner.RunAll(context.Background(), nil))
	assert.Equal(t, int64(0), runner.GetMetrics().TasksStarted)
}
