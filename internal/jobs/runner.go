// Package jobs runs a batch of named tasks in order and keeps timing metrics
// for them.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Task is one unit of work handed to a Runner.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes tasks one after another on the calling goroutine.
type Runner struct {
	metrics *Metrics
}

// NewRunner creates a runner with empty metrics.
func NewRunner() *Runner {
	return &Runner{metrics: NewMetrics()}
}

// RunAll executes the tasks in slice order. It stops at the first task that
// fails, or before the next task once ctx is done, and returns that error.
func (r *Runner) RunAll(ctx context.Context, tasks []Task) error {
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("task %s not started: %w", task.Name, err)
		}

		r.metrics.RecordStarted()
		startTime := time.Now()
		err := task.Run(ctx)
		executionTime := time.Since(startTime)

		if err != nil {
			r.metrics.RecordFailed()
			log.Printf("Task %s failed after %v: %v", task.Name, executionTime, err)
			return fmt.Errorf("task %s failed: %w", task.Name, err)
		}
		r.metrics.RecordCompleted(task.Name, executionTime)
	}
	return nil
}

// GetMetrics returns the runner's task metrics
func (r *Runner) GetMetrics() MetricsData {
	return r.metrics.GetMetrics()
}

// GetSuccessRate returns the overall task success rate
func (r *Runner) GetSuccessRate() float64 {
	return r.metrics.GetSuccessRate()
}
