package host

// Queue collects the commands emitted during one frame.
// The host drains it after the frame has been built.
type Queue struct {
	pending []Command
}

// Send appends cmd to the outbound queue. It never blocks and never fails.
func (q *Queue) Send(cmd Command) {
	if q == nil || cmd == nil {
		return
	}
	q.pending = append(q.pending, cmd)
}

// Len returns the number of commands waiting to be drained.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Drain returns the pending commands in send order and empties the queue.
func (q *Queue) Drain() []Command {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
