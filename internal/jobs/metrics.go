package jobs

import (
	"time"
)

// MetricsData is a point-in-time copy of Metrics.
type MetricsData struct {
	TasksStarted         int64         `json:"tasks_started"`
	TasksCompleted       int64         `json:"tasks_completed"`
	TasksFailed          int64         `json:"tasks_failed"`
	TotalExecutionTime   time.Duration `json:"total_execution_time_ns"`
	AverageExecutionTime time.Duration `json:"average_execution_time_ns"`
	SlowestTask          string        `json:"slowest_task"`
	SlowestExecutionTime time.Duration `json:"slowest_execution_time_ns"`
	LastUpdated          time.Time     `json:"last_updated"`
}

// Metrics tracks how the tasks of a Runner performed
type Metrics struct {
	data MetricsData
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{data: MetricsData{LastUpdated: time.Now()}}
}

// RecordStarted increments the started counter
func (m *Metrics) RecordStarted() {
	m.data.TasksStarted++
	m.data.LastUpdated = time.Now()
}

// RecordCompleted records a successful task and its execution time
func (m *Metrics) RecordCompleted(name string, executionTime time.Duration) {
	m.data.TasksCompleted++
	m.data.TotalExecutionTime += executionTime
	m.data.AverageExecutionTime = m.data.TotalExecutionTime / time.Duration(m.data.TasksCompleted)
	if executionTime >= m.data.SlowestExecutionTime {
		m.data.SlowestTask = name
		m.data.SlowestExecutionTime = executionTime
	}
	m.data.LastUpdated = time.Now()
}

// RecordFailed records a failed task
func (m *Metrics) RecordFailed() {
	m.data.TasksFailed++
	m.data.LastUpdated = time.Now()
}

// GetMetrics returns a copy of the current metrics
func (m *Metrics) GetMetrics() MetricsData {
	return m.data
}

// GetSuccessRate returns the success rate (0.0 to 1.0)
func (m *Metrics) GetSuccessRate() float64 {
	finished := m.data.TasksCompleted + m.data.TasksFailed
	if finished == 0 {
		return 1.0 // No tasks yet, assume 100% success
	}
	return float64(m.data.TasksCompleted) / float64(finished)
}
