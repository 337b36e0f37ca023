package threadpool

// Work is a deferred computation producing a value of type T.
type Work[T any] func() T

// Result is what a JoinHandle yields once its task has run.
// Err is set only when the task panicked.
type Result[T any] struct {
	Data T
	Err  error
}

type envelope[T any] struct {
	work Work[T]
	c    chan Result[T]
}

// message is either a task envelope or the terminate signal.
type message[T any] struct {
	envelope  *envelope[T]
	terminate bool
}

func isTerminate[T any](m message[T]) bool {
	return m.terminate
}

// JoinHandle is the caller side of a submitted task. At most one result is
// ever produced on it.
type JoinHandle[T any] struct {
	c chan Result[T]
}

func newJoinHandle[T any](c chan Result[T]) *JoinHandle[T] {
	return &JoinHandle[T]{c: c}
}

// Join blocks until the task result is available. ok is false when no result
// will ever be produced: the task was never accepted by a worker, or the
// result was already taken by an earlier Join.
func (h *JoinHandle[T]) Join() (Result[T], bool) {
	r, ok := <-h.c
	return r, ok
}

// C returns the channel the result is delivered on. The channel is closed
// right after the result is sent.
func (h *JoinHandle[T]) C() <-chan Result[T] {
	return h.c
}
