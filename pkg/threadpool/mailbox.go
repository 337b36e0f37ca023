package threadpool

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Peek() T { return (*q)[0] }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	var zero T
	old[0] = zero
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

// mailbox is an unbounded FIFO channel. A pump goroutine buffers everything
// sent on in and hands it out in order on out, so Send never waits for the
// consumer. The mailbox stops accepting messages once the last message (as
// reported by isLast) has been received, and the pump exits after handing
// that message out.
type mailbox[M any] struct {
	in      chan M
	out     chan M
	done    chan struct{}
	pending *queue[M]
	isLast  func(M) bool
}

func newMailbox[M any](isLast func(M) bool) *mailbox[M] {
	m := &mailbox[M]{
		in:      make(chan M),
		out:     make(chan M),
		done:    make(chan struct{}),
		pending: &queue[M]{},
		isLast:  isLast,
	}
	go m.run()
	return m
}

// Send enqueues msg. It returns false if the mailbox already received its
// last message.
func (m *mailbox[M]) Send(msg M) bool {
	select {
	case m.in <- msg:
		return true
	case <-m.done:
		return false
	}
}

func (m *mailbox[M]) Receive() <-chan M {
	return m.out
}

func (m *mailbox[M]) run() {
	defer close(m.out)

	in := m.in
	for in != nil || m.pending.Len() > 0 {
		// out stays nil while there is nothing to hand out, which disables
		// that case of the select.
		var out chan M
		var next M
		if m.pending.Len() > 0 {
			out = m.out
			next = m.pending.Peek()
		}

		select {
		case msg := <-in:
			m.pending.Push(msg)
			if m.isLast(msg) {
				in = nil
				close(m.done)
			}
		case out <- next:
			m.pending.Pop()
		}
	}
}
