package game

import "sync"

// Queue carries work from other goroutines onto the ebiten update goroutine.
type Queue struct {
	ch        chan func()
	closed    chan struct{}
	closeOnce sync.Once
}

// NewQueue returns a queue buffering up to size pending tasks.
func NewQueue(size int) *Queue {
	return &Queue{
		ch:     make(chan func(), size),
		closed: make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the buffer is full and returns without
// enqueuing once the queue is closed.
func (q *Queue) Post(fn func()) {
	select {
	case <-q.closed:
		return
	default:
	}
	select {
	case q.ch <- fn:
	case <-q.closed:
	}
}

// Drain runs every task pending right now and returns how many ran. Call it
// only from the update goroutine.
func (q *Queue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close releases blocked and future posters. Pending tasks are dropped.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}
