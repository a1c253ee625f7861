package box2d

/// A FIFO queue backed by one growable buffer. Popped slots are reused by
/// later pushes, so a queue that is kept across steps stops allocating once
/// it has reached its working size.
type B2StackQueue[T any] struct {
	buffer []T
	front  int
	back   int
}

func MakeB2StackQueue[T any](capacity int) B2StackQueue[T] {
	return B2StackQueue[T]{
		buffer: make([]T, capacity),
	}
}

func (q *B2StackQueue[T]) Push(item T) {
	if q.back >= len(q.buffer) {
		// Slide the live items down before growing.
		if q.front > 0 {
			copy(q.buffer, q.buffer[q.front:q.back])
			q.back -= q.front
			q.front = 0
		}

		if q.back >= len(q.buffer) {
			capacity := 2 * len(q.buffer)
			if capacity < 16 {
				capacity = 16
			}

			buffer := make([]T, capacity)
			copy(buffer, q.buffer[:q.back])
			q.buffer = buffer
		}
	}

	q.buffer[q.back] = item
	q.back++
}

func (q *B2StackQueue[T]) Pop() {
	B2Assert(q.front < q.back)
	q.front++

	if q.front == q.back {
		q.front = 0
		q.back = 0
	}
}

func (q B2StackQueue[T]) Front() T {
	B2Assert(q.front < q.back)
	return q.buffer[q.front]
}

func (q B2StackQueue[T]) Empty() bool {
	B2Assert(q.front <= q.back)
	return q.front == q.back
}

func (q B2StackQueue[T]) GetCount() int {
	return q.back - q.front
}

/// Drop all items, keeping the buffer.
func (q *B2StackQueue[T]) Clear() {
	q.front = 0
	q.back = 0
}
