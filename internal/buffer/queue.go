package buffer

// Queue is a FIFO of bytes. Data is kept in a single slice with a moving head, so popping is
// just a copy and an offset bump. The consumed prefix is reclaimed either once the queue
// drains, or once it gets bigger than the live data behind it.
//
// Queue isn't safe for concurrent use and is meant to be owned by exactly one reader.
type Queue struct {
	memory []byte
	head   int
}

func NewQueue(initialSize int) *Queue {
	return &Queue{
		memory: make([]byte, 0, initialSize),
	}
}

// Len returns the number of bytes waiting to be popped.
func (q *Queue) Len() int {
	return len(q.memory) - q.head
}

// Push copies data to the tail.
func (q *Queue) Push(data []byte) {
	if len(data) == 0 {
		return
	}

	q.compact()
	q.memory = append(q.memory, data...)
}

// Prepend copies data to the head, so it'll be popped before anything already queued.
func (q *Queue) Prepend(data []byte) {
	if len(data) == 0 {
		return
	}

	if q.head >= len(data) {
		q.head -= len(data)
		copy(q.memory[q.head:], data)
		return
	}

	live := q.memory[q.head:]
	memory := make([]byte, len(data)+len(live), max(cap(q.memory), len(data)+len(live)))
	copy(memory, data)
	copy(memory[len(data):], live)
	q.memory, q.head = memory, 0
}

// Pop moves at most len(dst) bytes from the head into dst and returns how many were moved.
func (q *Queue) Pop(dst []byte) int {
	n := copy(dst, q.memory[q.head:])
	q.head += n
	if q.head == len(q.memory) {
		q.Reset()
	}

	return n
}

// Bytes returns the queued data without consuming it. The slice is valid only until the
// next modification of the queue.
func (q *Queue) Bytes() []byte {
	return q.memory[q.head:]
}

// Reset drops everything queued, keeping the allocated memory.
func (q *Queue) Reset() {
	q.memory = q.memory[:0]
	q.head = 0
}

func (q *Queue) compact() {
	if q.head == 0 || q.head < q.Len() {
		return
	}

	n := copy(q.memory, q.memory[q.head:])
	q.memory = q.memory[:n]
	q.head = 0
}
