package launchpad

import "sync"

// Queue buffers raw inbound messages between the transport's listener and
// Poll. Push and Drain may be called from different goroutines.
type Queue struct {
	mu   sync.Mutex
	msgs [][]byte
}

// Push appends a copy of msg.
func (q *Queue) Push(msg []byte) {
	cp := append([]byte(nil), msg...)
	q.mu.Lock()
	q.msgs = append(q.msgs, cp)
	q.mu.Unlock()
}

// Drain returns everything buffered and empties the queue in one step, so a
// message is handed to exactly one caller.
func (q *Queue) Drain() [][]byte {
	q.mu.Lock()
	msgs := q.msgs
	q.msgs = nil
	q.mu.Unlock()
	return msgs
}

// Len returns the number of buffered messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}
