// Implements the WaitingLine, which holds the arrival times of all
// customers currently in the system, in arrival order.

package sim

import (
	"fmt"
	"strings"
)

// WaitingLine is a FIFO of arrival timestamps for the customers in the
// system: the one in service at the head plus everyone waiting behind
// it. Backed by a slice with a head index so Dequeue is amortized O(1)
// instead of re-slicing the front off on every removal.
type WaitingLine struct {
	times []float64
	head  int
}

// Enqueue adds an arrival time to the back of the line.
func (l *WaitingLine) Enqueue(t float64) {
	l.times = append(l.times, t)
}

// Dequeue removes and returns the oldest arrival time. The second
// return value is false if the line is empty.
func (l *WaitingLine) Dequeue() (float64, bool) {
	if l.head >= len(l.times) {
		return 0, false
	}
	t := l.times[l.head]
	l.head++
	// Reuse the backing array once the line drains.
	if l.head == len(l.times) {
		l.times = l.times[:0]
		l.head = 0
	}
	return t, true
}

// Peek returns the arrival time at the front of the line without
// removing it. The second return value is false if the line is empty.
func (l *WaitingLine) Peek() (float64, bool) {
	if l.head >= len(l.times) {
		return 0, false
	}
	return l.times[l.head], true
}

// Len returns the number of customers in the line.
func (l *WaitingLine) Len() int {
	return len(l.times) - l.head
}

func (l *WaitingLine) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range l.times[l.head:] {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.4f", t))
	}
	sb.WriteString("]")
	return sb.String()
}
