// Package threadpool implements a fixed-size worker pool where every worker
// owns a private FIFO queue.
//
// Work is submitted with Submit, which never waits for execution and returns a
// JoinHandle used to retrieve the result later.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│                        Submit(fn)                                   │
//	│                            │                                        │
//	│                     ┌──────┴──────┐      cursor (atomic)            │
//	│                     │ dispatch()  │◄──── round robin fallback       │
//	│                     └──────┬──────┘                                 │
//	│          ┌─────────────────┼─────────────────┐                      │
//	│          ▼                 ▼                 ▼                      │
//	│   ┌────────────┐    ┌────────────┐    ┌────────────┐                │
//	│   │  mailbox 0 │    │  mailbox 1 │    │  mailbox N │  unbounded FIFO│
//	│   └─────┬──────┘    └─────┬──────┘    └─────┬──────┘                │
//	│         ▼                 ▼                 ▼                       │
//	│   ┌────────────┐    ┌────────────┐    ┌────────────┐                │
//	│   │  worker 0  │    │  worker 1  │    │  worker N  │  busy flag     │
//	│   └────────────┘    └────────────┘    └────────────┘                │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Dispatch
//
// dispatch scans the workers in construction order and picks the first one
// whose busy flag reads idle. The flag is a hint: it is written by the worker
// and read by submitters without any coordination with the enqueue, so two
// concurrent submitters may both pick the same "idle" worker. This race is
// accepted; correctness never depends on the flag.
//
// When every worker reads busy, dispatch falls back to round robin. The
// cursor is advanced with a compare-and-swap loop, so consecutive fallback
// dispatches visit workers 0, 1, …, N-1, 0, … with no repeat and no skip,
// even with many concurrent submitters.
//
// Once enqueued, a task stays on its worker. There is no stealing.
//
// # Worker Lifecycle
//
//	┌───────────┐   work message   ┌───────────┐
//	│   Idle    │ ───────────────► │ Executing │
//	│ (waiting) │ ◄─────────────── │ busy=true │
//	└─────┬─────┘   result sent    └───────────┘
//	      │
//	      │ terminate message
//	      ▼
//	┌────────────┐
//	│ Terminated │
//	└────────────┘
//
// # Results
//
// Each task gets a buffered channel of size one. The worker sends exactly one
// Result and closes the channel, so it never blocks even if the caller threw
// the JoinHandle away.
//
//	h := pool.Submit(func() int { return 42 })
//	res, ok := h.Join()
//	if !ok {
//	    // no result will ever come (pool already torn down)
//	}
//	if res.Err != nil {
//	    // the task panicked
//	}
//
// # Panic Recovery
//
// A panic inside a task is recovered by the worker and reported on the task's
// handle as a *errors.TaskPanicError. The worker keeps serving its queue.
// A task that calls runtime.Goexit is reported as a *errors.TaskExitedError
// and the worker loop carries on from a new goroutine.
//
// # Teardown
//
// Close puts a terminate message at the end of every worker's queue and waits
// for the workers one after the other. Because queues are FIFO, everything
// submitted before Close runs to completion first. Submitting after Close is
// a programming error: the task is dropped and its handle yields no result.
//
// Use Scoped or a deferred Close to release the workers on every path.
package threadpool
