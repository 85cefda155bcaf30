// Tracks per-run statistics for the M/M/1 queue simulation.

package sim

// Metrics aggregates statistics over a single simulation run. One
// Metrics instance belongs to one QueueSimulator; nothing is shared
// across runs.
type Metrics struct {
	Arrivals      int     // Customers admitted before the horizon
	Completed     int     // Customers whose service finished
	SojournSum    float64 // Sum of (departure - arrival) over completed customers
	MaxQueueDepth int     // Peak count of customers waiting (excludes the one in service)
	EndTime       float64 // Clock value when the run stopped
}

// RecordSojourn accumulates the time a completed customer spent in the
// system, from arrival to service completion.
func (m *Metrics) RecordSojourn(d float64) {
	m.SojournSum += d
	m.Completed++
}

// ObserveDepth updates the running maximum waiting-line depth.
func (m *Metrics) ObserveDepth(depth int) {
	if depth > m.MaxQueueDepth {
		m.MaxQueueDepth = depth
	}
}

// Summary freezes the accumulated metrics into a QueueResult.
// The mean sojourn time is defined as 0 when no customer completed.
func (m *Metrics) Summary() QueueResult {
	r := QueueResult{
		MaxQueueDepth: m.MaxQueueDepth,
		Completed:     m.Completed,
		Arrivals:      m.Arrivals,
		EndTime:       m.EndTime,
	}
	if m.Completed > 0 {
		r.MeanSojourn = m.SojournSum / float64(m.Completed)
	}
	if m.EndTime > 0 {
		r.Throughput = float64(m.Completed) / m.EndTime
	}
	return r
}

// QueueResult is the summary returned by a finished M/M/1 run.
type QueueResult struct {
	MeanSojourn   float64 // Average time in system; 0 if nobody completed
	MaxQueueDepth int     // Peak waiting-line depth (excludes the one in service)
	Completed     int     // Number of completed customers
	Arrivals      int     // Number of admitted customers
	Throughput    float64 // Completions per unit of simulated time
	EndTime       float64 // Time of the last processed event
}
