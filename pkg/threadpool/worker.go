package threadpool

import (
	"runtime/debug"
	"sync/atomic"

	"go.uber.org/zap"

	srvErrors "github.com/tupyy/rrpool/pkg/errors"
)

type worker[T any] struct {
	index   int
	poolID  string
	mailbox *mailbox[message[T]]
	// busy is a load-balancing hint only. The dispatcher reads it without any
	// coordination with the enqueue that follows, so a worker seen as idle
	// may already have work queued.
	busy     atomic.Bool
	enqueued atomic.Uint64
	executed atomic.Uint64
	panicked atomic.Uint64
	done     chan struct{}
}

func newWorker[T any](index int, poolID string) *worker[T] {
	w := &worker[T]{
		index:   index,
		poolID:  poolID,
		mailbox: newMailbox(isTerminate[T]),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *worker[T]) enqueue(e *envelope[T]) error {
	w.enqueued.Add(1)
	if !w.mailbox.Send(message[T]{envelope: e}) {
		w.enqueued.Add(^uint64(0))
		return srvErrors.NewQueueClosedError(w.index)
	}
	return nil
}

// terminate queues the terminate signal behind any pending work.
func (w *worker[T]) terminate() {
	w.mailbox.Send(message[T]{terminate: true})
}

func (w *worker[T]) run() {
	stopped := false
	defer func() {
		if !stopped {
			// a task called runtime.Goexit: keep draining the queue on a
			// fresh goroutine
			w.busy.Store(false)
			go w.run()
			return
		}
		close(w.done)
	}()

	for msg := range w.mailbox.Receive() {
		if msg.terminate {
			zap.S().Named("threadpool").Debugw("worker terminated", "pool", w.poolID, "worker", w.index, "executed", w.executed.Load())
			stopped = true
			return
		}
		w.busy.Store(true)
		w.execute(msg.envelope)
		w.busy.Store(false)
	}
	stopped = true
}

func (w *worker[T]) execute(e *envelope[T]) {
	returned := false
	defer func() {
		rec := recover()
		switch {
		case rec != nil:
			err := srvErrors.NewTaskPanicError(rec, debug.Stack())
			w.panicked.Add(1)
			zap.S().Named("threadpool").Errorw("task panicked", "pool", w.poolID, "worker", w.index, "error", err)
			e.c <- Result[T]{Err: err}
		case !returned:
			err := srvErrors.NewTaskExitedError(w.index)
			w.panicked.Add(1)
			zap.S().Named("threadpool").Errorw("task exited its goroutine", "pool", w.poolID, "worker", w.index, "error", err)
			e.c <- Result[T]{Err: err}
		}
		close(e.c)
		w.executed.Add(1)
	}()

	v := e.work()
	returned = true
	e.c <- Result[T]{Data: v}
}

func (w *worker[T]) stats() WorkerStats {
	// executed is loaded first so Pending never goes negative.
	executed := w.executed.Load()
	return WorkerStats{
		Index:    w.index,
		Busy:     w.busy.Load(),
		Executed: executed,
		Panicked: w.panicked.Load(),
		Enqueued: w.enqueued.Load(),
	}
}
