package sim

import "testing"

func TestWaitingLine_FIFOOrder(t *testing.T) {
	// GIVEN a line with arrivals [1.0, 2.0, 3.0]
	line := &WaitingLine{}
	line.Enqueue(1.0)
	line.Enqueue(2.0)
	line.Enqueue(3.0)

	// WHEN the line is drained
	// THEN values come back oldest first
	want := []float64{1.0, 2.0, 3.0}
	for i, w := range want {
		got, ok := line.Dequeue()
		if !ok {
			t.Fatalf("Dequeue %d: line unexpectedly empty", i)
		}
		if got != w {
			t.Errorf("Dequeue %d: got %v, want %v", i, got, w)
		}
	}
}

func TestWaitingLine_DequeueEmpty(t *testing.T) {
	line := &WaitingLine{}
	if _, ok := line.Dequeue(); ok {
		t.Error("Dequeue on empty line: got ok=true, want false")
	}
}

func TestWaitingLine_PeekDoesNotRemove(t *testing.T) {
	// GIVEN a line with one arrival
	line := &WaitingLine{}
	line.Enqueue(1.5)

	// WHEN Peek is called
	got, ok := line.Peek()

	// THEN it returns the front without shrinking the line
	if !ok || got != 1.5 {
		t.Errorf("Peek: got (%v, %v), want (1.5, true)", got, ok)
	}
	if line.Len() != 1 {
		t.Errorf("Peek modified line length: got %d, want 1", line.Len())
	}
}

func TestWaitingLine_PeekEmpty(t *testing.T) {
	line := &WaitingLine{}
	if _, ok := line.Peek(); ok {
		t.Error("Peek on empty line: got ok=true, want false")
	}
}

func TestWaitingLine_ReusableAfterDrain(t *testing.T) {
	// GIVEN a line that has been filled and fully drained
	line := &WaitingLine{}
	line.Enqueue(1.0)
	line.Enqueue(2.0)
	line.Dequeue()
	line.Dequeue()

	// WHEN new arrivals are enqueued
	line.Enqueue(5.0)

	// THEN the line behaves like a fresh FIFO
	if line.Len() != 1 {
		t.Fatalf("Len after reuse: got %d, want 1", line.Len())
	}
	got, ok := line.Dequeue()
	if !ok || got != 5.0 {
		t.Errorf("Dequeue after reuse: got (%v, %v), want (5.0, true)", got, ok)
	}
}

func TestWaitingLine_InterleavedOperations(t *testing.T) {
	line := &WaitingLine{}
	line.Enqueue(1.0)
	line.Enqueue(2.0)
	if got, _ := line.Dequeue(); got != 1.0 {
		t.Errorf("first Dequeue: got %v, want 1.0", got)
	}
	line.Enqueue(3.0)
	if got, _ := line.Dequeue(); got != 2.0 {
		t.Errorf("second Dequeue: got %v, want 2.0", got)
	}
	if got, _ := line.Dequeue(); got != 3.0 {
		t.Errorf("third Dequeue: got %v, want 3.0", got)
	}
	if line.Len() != 0 {
		t.Errorf("Len after drain: got %d, want 0", line.Len())
	}
}
