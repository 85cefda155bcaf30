package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all queue simulation events.
// Each event has a Timestamp (in simulated time) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*QueueSimulator)
}

// ArrivalEvent represents a new customer joining the system.
type ArrivalEvent struct {
	time float64 // Simulated time of arrival
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits the customer and keeps the arrival process going.
func (e *ArrivalEvent) Execute(q *QueueSimulator) {
	logrus.Debugf("<< Arrival at t=%.6f (in system: %d)", e.time, q.inSystem+1)

	q.inSystem++
	q.line.Enqueue(e.time)
	q.metrics.Arrivals++
	// Depth excludes the customer in service.
	q.metrics.ObserveDepth(q.inSystem - 1)

	// The arrival process is independent of the queue state: the next
	// arrival is always scheduled from the current clock.
	q.Schedule(&ArrivalEvent{time: q.Clock + Exp(q.rng, q.arrivalRate)})

	// Idle→Busy transition: this customer starts service immediately.
	if q.inSystem == 1 {
		q.Schedule(&DepartureEvent{time: q.Clock + Exp(q.rng, q.serviceRate)})
	}
}

// DepartureEvent represents the customer in service completing and
// leaving the system.
type DepartureEvent struct {
	time float64 // Simulated time of service completion
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() float64 {
	return e.time
}

// Execute completes service for the oldest customer (FIFO) and, if
// anyone is still waiting, starts serving the next one.
func (e *DepartureEvent) Execute(q *QueueSimulator) {
	logrus.Debugf(">> Departure at t=%.6f (in system: %d)", e.time, q.inSystem-1)

	arrived, ok := q.line.Dequeue()
	if !ok {
		panic("DepartureEvent: departure with empty waiting line")
	}
	q.metrics.RecordSojourn(q.Clock - arrived)
	q.inSystem--

	if q.inSystem > 0 {
		q.Schedule(&DepartureEvent{time: q.Clock + Exp(q.rng, q.serviceRate)})
	}
}
