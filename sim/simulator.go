// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// queuedEvent pairs an event with its insertion sequence number. The
// sequence is the secondary sort key: two events with an identical
// timestamp pop in insertion order, so degenerate inputs and float
// rounding cannot make a run irreproducible.
type queuedEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements heap.Interface and orders events by timestamp,
// breaking ties by insertion order.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []queuedEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	ti, tj := eq[i].ev.Timestamp(), eq[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(queuedEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// QueueSimulator is the core object that holds simulated time, queue
// state, and the event loop for one M/M/1 run. All state is local to
// the run; a QueueSimulator is built, run once, and discarded.
type QueueSimulator struct {
	// Clock is the current simulated time. It only moves forward:
	// every processed event's timestamp becomes the new clock value.
	Clock float64
	// Horizon bounds the simulated window [0, Horizon]. Events with a
	// timestamp beyond it are discarded, ending the run.
	Horizon float64

	events  EventQueue
	line    *WaitingLine
	metrics *Metrics

	inSystem int    // customers in system (waiting + in service)
	seq      uint64 // next event insertion sequence number

	arrivalRate float64 // λ, customer arrivals per unit time
	serviceRate float64 // μ, service completions per unit time
	rng         *rand.Rand
}

// NewQueueSimulator validates the parameters and builds an idle
// simulator with an empty event queue and waiting line. rng must not
// be nil.
func NewQueueSimulator(rng *rand.Rand, arrivalRate, serviceRate, horizon float64) (*QueueSimulator, error) {
	if rng == nil {
		panic("NewQueueSimulator: rng must not be nil")
	}
	if err := requirePositive("arrival rate", arrivalRate); err != nil {
		return nil, err
	}
	if err := requirePositive("service rate", serviceRate); err != nil {
		return nil, err
	}
	if err := requirePositive("horizon", horizon); err != nil {
		return nil, err
	}
	return &QueueSimulator{
		Clock:       0,
		Horizon:     horizon,
		events:      make(EventQueue, 0),
		line:        &WaitingLine{},
		metrics:     &Metrics{},
		arrivalRate: arrivalRate,
		serviceRate: serviceRate,
		rng:         rng,
	}, nil
}

// requirePositive rejects non-positive, NaN, and infinite parameters.
// The exponential distribution is undefined for rate <= 0, and a
// non-finite horizon would never end the run.
func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be a finite positive number, got %v: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

// Schedule pushes an event into the simulator's event queue.
func (q *QueueSimulator) Schedule(ev Event) {
	heap.Push(&q.events, queuedEvent{ev: ev, seq: q.seq})
	q.seq++
}

// InSystem returns the current number of customers in the system.
func (q *QueueSimulator) InSystem() int {
	return q.inSystem
}

// Run processes events in timestamp order until the queue drains or
// the earliest remaining event falls past the horizon. An event is
// processed iff its timestamp is <= Horizon; the first event beyond it
// is discarded together with everything scheduled after it.
func (q *QueueSimulator) Run() QueueResult {
	for q.events.Len() > 0 {
		// get the next event to be simulated
		ev := heap.Pop(&q.events).(queuedEvent).ev
		if ev.Timestamp() > q.Horizon {
			break
		}
		// advance the clock
		q.Clock = ev.Timestamp()
		logrus.Debugf("[t=%010.4f] Executing %T", q.Clock, ev)
		// process the event
		ev.Execute(q)
	}
	q.metrics.EndTime = q.Clock
	logrus.Debugf("[t=%010.4f] Queue simulation ended", q.Clock)
	return q.metrics.Summary()
}

// SimulateMM1 runs a discrete-event simulation of a single-server
// Poisson queue: customers arrive with exponential inter-arrival times
// at rate arrivalRate (λ), are served one at a time in FIFO order with
// exponential service times at rate serviceRate (μ), and the run
// covers the simulated window [0, horizon].
//
// It returns the mean sojourn time (time in system averaged over
// customers whose service completed; 0 if none did) and the peak
// waiting-line depth, along with supporting counters.
//
// Fails with ErrInvalidArgument if arrivalRate, serviceRate, or
// horizon is not a finite positive number. Given an identically seeded
// rng, two runs with the same parameters return identical results.
func SimulateMM1(rng *rand.Rand, arrivalRate, serviceRate, horizon float64) (QueueResult, error) {
	q, err := NewQueueSimulator(rng, arrivalRate, serviceRate, horizon)
	if err != nil {
		return QueueResult{}, err
	}
	// First arrival, drawn from time 0.
	q.Schedule(&ArrivalEvent{time: Exp(rng, arrivalRate)})
	return q.Run(), nil
}
