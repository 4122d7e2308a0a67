package qml

import (
	"sync"
	"time"
)

type EvalMetrics struct {
	mu sync.RWMutex

	EvalCount     int64
	NodeEvals     int64
	Failures      int64
	TotalEvalTime time.Duration
	LastEvalTime  time.Duration
	LastEval      time.Time

	AverageEvalLatency time.Duration
	SuccessRate        float64
}

func newEvalMetrics() *EvalMetrics {
	return &EvalMetrics{}
}

func (m *EvalMetrics) recordEval(startTime time.Time, nodes int, err error) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.EvalCount++
	m.NodeEvals += int64(nodes)
	m.TotalEvalTime += duration
	m.LastEvalTime = duration
	m.LastEval = startTime
	if err != nil {
		m.Failures++
	}

	m.AverageEvalLatency = m.TotalEvalTime / time.Duration(m.EvalCount)
	m.SuccessRate = float64(m.EvalCount-m.Failures) / float64(m.EvalCount)
}

// ExportMetrics returns a snapshot suitable for logging or scraping.
func (m *EvalMetrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"eval_count":   m.EvalCount,
		"node_evals":   m.NodeEvals,
		"failures":     m.Failures,
		"success_rate": m.SuccessRate,
		"avg_latency":  m.AverageEvalLatency.Milliseconds(),
		"last_latency": m.LastEvalTime.Milliseconds(),
	}
}
