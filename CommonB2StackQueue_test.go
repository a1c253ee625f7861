package box2d_test

import (
	"testing"

	"github.com/Tobi29/scapes-engine-sub012"
)

func TestStackQueueFIFO(t *testing.T) {
	q := box2d.MakeB2StackQueue[int](2)

	next := 0
	for i := 0; i < 100; i++ {
		q.Push(i)

		// Pop every third push so the buffer both slides and grows.
		if i%3 == 2 {
			if got := q.Front(); got != next {
				t.Fatalf("Front() = %d, want %d", got, next)
			}
			q.Pop()
			next++
		}
	}

	if q.GetCount() != 100-next {
		t.Errorf("GetCount() = %d, want %d", q.GetCount(), 100-next)
	}

	for !q.Empty() {
		if got := q.Front(); got != next {
			t.Fatalf("Front() = %d, want %d", got, next)
		}
		q.Pop()
		next++
	}

	if next != 100 {
		t.Errorf("popped %d items, want 100", next)
	}
}

func TestStackQueueClear(t *testing.T) {
	q := box2d.MakeB2StackQueue[string](0)
	q.Push("a")
	q.Push("b")
	q.Clear()

	if !q.Empty() || q.GetCount() != 0 {
		t.Errorf("queue not empty after Clear: %d items", q.GetCount())
	}

	assertPanics(t, "Pop on empty queue", func() {
		q.Pop()
	})
}
