package metrics

import "time"

// Image pipeline outcomes
const (
	ImageOutcomeSuccess  = "success"
	ImageOutcomeRejected = "rejected"
	ImageOutcomeFailed   = "failed"
)

// IncrementKanbanCreated increments kanban creation counter
func (m *Metrics) IncrementKanbanCreated() {
	m.safeExecute("IncrementKanbanCreated", func() {
		m.KanbanCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementTaskAssigned increments the successful assignment counter
func (m *Metrics) IncrementTaskAssigned() {
	m.safeExecute("IncrementTaskAssigned", func() {
		m.TaskAssignedTotal.Inc()
	})
}

// RecordImageProcessed records one pipeline run
func (m *Metrics) RecordImageProcessed(outcome string, duration time.Duration) {
	m.safeExecute("RecordImageProcessed", func() {
		m.ImagesProcessedTotal.WithLabelValues(outcome).Inc()
		m.ImageProcessingDuration.Observe(duration.Seconds())
	})
}

// SetUsersTotal sets total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetKanbansTotal sets total kanbans gauge
func (m *Metrics) SetKanbansTotal(count int64) {
	m.safeExecute("SetKanbansTotal", func() {
		m.KanbansTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
