package threadpool

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	srvErrors "github.com/tupyy/rrpool/pkg/errors"
)

type Option func(p *options)

type options struct {
	id string
}

// WithID sets the id used to tag the pool in logs and stats.
// By default a random uuid is used.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

type Pool[T any] struct {
	id        string
	workers   []*worker[T]
	cursor    atomic.Uint64
	submitted atomic.Uint64
	idleHits  atomic.Uint64
	fallbacks atomic.Uint64
	once      sync.Once
}

// New starts a pool of nbWorkers workers, each one blocked on its own queue.
func New[T any](nbWorkers int, opts ...Option) (*Pool[T], error) {
	if nbWorkers <= 0 {
		return nil, srvErrors.NewInvalidWorkerCountError(nbWorkers)
	}

	o := options{id: uuid.NewString()}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		id:      o.id,
		workers: make([]*worker[T], 0, nbWorkers),
	}
	for i := range nbWorkers {
		p.workers = append(p.workers, newWorker[T](i, p.id))
	}

	zap.S().Named("threadpool").Infow("pool started", "pool", p.id, "workers", nbWorkers)

	return p, nil
}

// Scoped runs fn with a fresh pool and tears the pool down on every way out
// of fn, including panics.
func Scoped[T any](nbWorkers int, fn func(p *Pool[T]) error, opts ...Option) error {
	p, err := New[T](nbWorkers, opts...)
	if err != nil {
		return err
	}
	defer p.Close()

	return fn(p)
}

func (p *Pool[T]) ID() string {
	return p.id
}

func (p *Pool[T]) Size() int {
	return len(p.workers)
}

// Submit queues w on a worker and returns immediately.
//
// Submit must not be called once Close has started. If it is, the task is
// dropped and the returned handle yields no result.
func (p *Pool[T]) Submit(w Work[T]) *JoinHandle[T] {
	c := make(chan Result[T], 1)
	h := newJoinHandle(c)

	idx, idle := p.dispatch()
	if err := p.workers[idx].enqueue(&envelope[T]{work: w, c: c}); err != nil {
		zap.S().Named("threadpool").Errorw("task dispatched after teardown", "pool", p.id, "error", err)
		close(c)
		return h
	}

	p.submitted.Add(1)
	if idle {
		p.idleHits.Add(1)
	} else {
		p.fallbacks.Add(1)
	}

	return h
}

// dispatch picks the first worker that looks idle. When every worker looks
// busy it falls back to round robin. idle reports which rule was used.
func (p *Pool[T]) dispatch() (idx int, idle bool) {
	for i, w := range p.workers {
		if !w.busy.Load() {
			return i, true
		}
	}
	return p.next(), false
}

// next returns the current cursor and advances it modulo the pool size, so
// concurrent callers each get a distinct slot of the cycle.
func (p *Pool[T]) next() int {
	n := uint64(len(p.workers))
	for {
		cur := p.cursor.Load()
		if p.cursor.CompareAndSwap(cur, (cur+1)%n) {
			return int(cur)
		}
	}
}

// Close signals every worker to stop once its queue is drained and waits for
// all of them to exit. Close is idempotent.
func (p *Pool[T]) Close() {
	p.once.Do(func() {
		log := zap.S().Named("threadpool")
		log.Debugw("tearing down pool", "pool", p.id)

		for _, w := range p.workers {
			w.terminate()
		}
		for _, w := range p.workers {
			<-w.done
		}

		log.Infow("pool stopped", "pool", p.id, "submitted", p.submitted.Load())
	})
}

type WorkerStats struct {
	Index    int
	Busy     bool
	Enqueued uint64
	Executed uint64
	Panicked uint64
}

// Pending is the number of tasks queued on the worker or running on it.
func (s WorkerStats) Pending() uint64 {
	return s.Enqueued - s.Executed
}

type Stats struct {
	ID                 string
	Submitted          uint64
	IdleDispatches     uint64
	FallbackDispatches uint64
	Executed           uint64
	Panicked           uint64
	Workers            []WorkerStats
}

func (s Stats) Busy() int {
	busy := 0
	for _, w := range s.Workers {
		if w.Busy {
			busy++
		}
	}
	return busy
}

// Stats returns a snapshot of the pool counters. Counters are read one by
// one, so the snapshot is not atomic as a whole.
func (p *Pool[T]) Stats() Stats {
	s := Stats{
		ID:                 p.id,
		Submitted:          p.submitted.Load(),
		IdleDispatches:     p.idleHits.Load(),
		FallbackDispatches: p.fallbacks.Load(),
		Workers:            make([]WorkerStats, 0, len(p.workers)),
	}
	for _, w := range p.workers {
		ws := w.stats()
		s.Executed += ws.Executed
		s.Panicked += ws.Panicked
		s.Workers = append(s.Workers, ws)
	}
	return s
}
