package threadpool_test

import (
	"runtime"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	srvErrors "github.com/tupyy/rrpool/pkg/errors"
	"github.com/tupyy/rrpool/pkg/threadpool"
)

var _ = Describe("Pool", func() {
	var p *threadpool.Pool[int]

	AfterEach(func() {
		if p != nil {
			p.Close()
			p = nil
		}
	})

	Describe("New", func() {
		It("should refuse a pool without workers", func() {
			_, err := threadpool.New[int](0)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidWorkerCountError(err)).To(BeTrue())

			_, err = threadpool.New[int](-3)
			Expect(srvErrors.IsInvalidWorkerCountError(err)).To(BeTrue())
		})

		It("should start the requested number of workers", func() {
			var err error
			p, err = threadpool.New[int](3, threadpool.WithID("test-pool"))
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Size()).To(Equal(3))
			Expect(p.ID()).To(Equal("test-pool"))
			Expect(p.Stats().Workers).To(HaveLen(3))
		})
	})

	Describe("Submit", func() {
		It("should return a handle yielding the task result", func() {
			p, _ = threadpool.New[int](1)

			h := p.Submit(func() int { return 42 })
			Expect(h).NotTo(BeNil())

			var result threadpool.Result[int]
			Eventually(h.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Data).To(Equal(42))
			Expect(result.Err).To(BeNil())
		})

		It("should not wait for the task to run", func() {
			p, _ = threadpool.New[int](1)

			unblock := make(chan struct{})
			defer close(unblock)

			submitted := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				for i := range 10 {
					p.Submit(func() int {
						<-unblock
						return i
					})
				}
				close(submitted)
			}()

			Eventually(submitted, 1*time.Second).Should(BeClosed())
		})

		// Given M tasks each returning its own index on a pool of N < M workers
		// When all handles are joined
		// Then the joined results are exactly {0, ..., M-1}
		It("should execute every task exactly once", func() {
			const m = 200
			p, _ = threadpool.New[int](4)

			handles := make([]*threadpool.JoinHandle[int], 0, m)
			for i := range m {
				handles = append(handles, p.Submit(func() int { return i }))
			}

			results := make([]int, 0, m)
			for i, h := range handles {
				res, ok := h.Join()
				Expect(ok).To(BeTrue())
				Expect(res.Data).To(Equal(i))
				results = append(results, res.Data)
			}

			expected := make([]int, 0, m)
			for i := range m {
				expected = append(expected, i)
			}
			Expect(results).To(ConsistOf(expected))
			Eventually(func() uint64 { return p.Stats().Executed }, 2*time.Second).Should(Equal(uint64(m)))
			Expect(p.Stats().Submitted).To(Equal(uint64(m)))
		})

		It("should handle concurrent submitters", func() {
			const submitters = 8
			const perSubmitter = 50
			p, _ = threadpool.New[int](3)

			var wg sync.WaitGroup
			sums := make(chan int, submitters)
			for s := range submitters {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					var handles []*threadpool.JoinHandle[int]
					for i := range perSubmitter {
						handles = append(handles, p.Submit(func() int { return s*perSubmitter + i }))
					}
					sum := 0
					for _, h := range handles {
						res, ok := h.Join()
						Expect(ok).To(BeTrue())
						sum += res.Data
					}
					sums <- sum
				}()
			}
			wg.Wait()
			close(sums)

			total := 0
			for s := range sums {
				total += s
			}
			n := submitters * perSubmitter
			Expect(total).To(Equal(n * (n - 1) / 2))
		})

		// Given a single worker
		// When t1, t2 and t3 are submitted in order
		// Then they complete in submission order
		It("should run tasks in submission order on a single worker", func() {
			p, _ = threadpool.New[int](1)

			order := make(chan int, 3)
			var handles []*threadpool.JoinHandle[int]
			for i := 1; i <= 3; i++ {
				handles = append(handles, p.Submit(func() int {
					time.Sleep(5 * time.Millisecond)
					order <- i
					return i
				}))
			}
			for _, h := range handles {
				h.Join()
			}
			close(order)

			var got []int
			for i := range order {
				got = append(got, i)
			}
			Expect(got).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("Dispatch", func() {
		It("should prefer the first idle worker", func() {
			p, _ = threadpool.New[int](3)

			h := p.Submit(func() int { return 1 })
			h.Join()

			Eventually(func() uint64 { return p.Stats().Workers[0].Executed }, time.Second).Should(Equal(uint64(1)))
			stats := p.Stats()
			Expect(stats.IdleDispatches).To(Equal(uint64(1)))
			Expect(stats.FallbackDispatches).To(BeZero())
			Expect(stats.Workers[1].Enqueued).To(BeZero())
			Expect(stats.Workers[2].Enqueued).To(BeZero())
		})

		// Given every worker is busy
		// When more tasks are submitted
		// Then the fallback dispatches cycle through every worker in order
		It("should fall back to round robin when every worker is busy", func() {
			const n = 3
			const rounds = 4
			p, _ = threadpool.New[int](n)

			unblock := make(chan struct{})
			var handles []*threadpool.JoinHandle[int]
			for i := range n {
				handles = append(handles, p.Submit(func() int {
					<-unblock
					return -1
				}))
				Eventually(func() bool { return p.Stats().Workers[i].Busy }, 2*time.Second).Should(BeTrue())
			}

			for i := range n * rounds {
				handles = append(handles, p.Submit(func() int { return i }))
			}

			stats := p.Stats()
			Expect(stats.FallbackDispatches).To(Equal(uint64(n * rounds)))
			for _, w := range stats.Workers {
				Expect(w.Enqueued).To(Equal(uint64(1 + rounds)))
				Expect(w.Pending()).To(Equal(uint64(1 + rounds)))
			}

			close(unblock)
			for _, h := range handles {
				_, ok := h.Join()
				Expect(ok).To(BeTrue())
			}
		})

		It("should cycle the cursor through every worker", func() {
			p, _ = threadpool.New[int](4)

			var got []int
			for range 12 {
				got = append(got, p.Next())
			}
			Expect(got).To(Equal([]int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3}))
		})

		It("should hand out cursor slots fairly under contention", func() {
			const n = 4
			const callers = 8
			const calls = 1000
			p, _ = threadpool.New[int](n)

			var mu sync.Mutex
			counts := make([]int, n)
			var wg sync.WaitGroup
			for range callers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					local := make([]int, n)
					for range calls {
						local[p.Next()]++
					}
					mu.Lock()
					for i, c := range local {
						counts[i] += c
					}
					mu.Unlock()
				}()
			}
			wg.Wait()

			for _, c := range counts {
				Expect(c).To(Equal(callers * calls / n))
			}
		})
	})

	Describe("JoinHandle", func() {
		It("should report absence on a second join", func() {
			p, _ = threadpool.New[int](1)

			h := p.Submit(func() int { return 7 })
			res, ok := h.Join()
			Expect(ok).To(BeTrue())
			Expect(res.Data).To(Equal(7))

			_, ok = h.Join()
			Expect(ok).To(BeFalse())
		})

		It("should not leak when the handle is never joined", func() {
			p, _ = threadpool.New[int](2)

			for i := range 20 {
				p.Submit(func() int { return i })
			}

			Eventually(func() uint64 { return p.Stats().Executed }, 2*time.Second).Should(Equal(uint64(20)))
		})
	})

	Describe("Panic recovery", func() {
		// Given a single worker
		// When a task panics
		// Then its handle reports the panic and the next task still runs
		It("should report the panic and keep the worker alive", func() {
			p, _ = threadpool.New[int](1)

			bad := p.Submit(func() int { panic("boom") })
			good := p.Submit(func() int { return 5 })

			res, ok := bad.Join()
			Expect(ok).To(BeTrue())
			Expect(srvErrors.IsTaskPanicError(res.Err)).To(BeTrue())
			Expect(res.Err.Error()).To(ContainSubstring("boom"))

			res, ok = good.Join()
			Expect(ok).To(BeTrue())
			Expect(res.Err).To(BeNil())
			Expect(res.Data).To(Equal(5))

			Eventually(func() uint64 { return p.Stats().Panicked }, time.Second).Should(Equal(uint64(1)))
		})

		// Given a single worker
		// When a task ends its goroutine with runtime.Goexit
		// Then its handle reports the exit and queued tasks still run
		It("should keep the worker alive when a task calls Goexit", func() {
			p, _ = threadpool.New[int](1)

			exiting := p.Submit(func() int {
				runtime.Goexit()
				return 0
			})
			queued := p.Submit(func() int { return 5 })

			var res threadpool.Result[int]
			Eventually(exiting.C(), 2*time.Second).Should(Receive(&res))
			Expect(srvErrors.IsTaskExitedError(res.Err)).To(BeTrue())

			Eventually(queued.C(), 2*time.Second).Should(Receive(&res))
			Expect(res.Err).To(BeNil())
			Expect(res.Data).To(Equal(5))

			Eventually(func() bool { return p.Stats().Workers[0].Busy }, time.Second).Should(BeFalse())

			later, ok := p.Submit(func() int { return 6 }).Join()
			Expect(ok).To(BeTrue())
			Expect(later.Data).To(Equal(6))
		})
	})

	Describe("Close", func() {
		It("should wait for submitted tasks to finish", func() {
			p, _ = threadpool.New[int](1)

			h := p.Submit(func() int {
				time.Sleep(50 * time.Millisecond)
				return 1
			})

			start := time.Now()
			p.Close()
			Expect(time.Since(start)).To(BeNumerically(">=", 50*time.Millisecond))

			res, ok := h.Join()
			Expect(ok).To(BeTrue())
			Expect(res.Data).To(Equal(1))
		})

		It("should drain queued tasks on every worker before returning", func() {
			p, _ = threadpool.New[int](3)

			var handles []*threadpool.JoinHandle[int]
			for i := range 30 {
				handles = append(handles, p.Submit(func() int {
					time.Sleep(time.Millisecond)
					return i
				}))
			}
			p.Close()

			for _, h := range handles {
				select {
				case _, ok := <-h.C():
					Expect(ok).To(BeTrue())
				default:
					Fail("task did not complete before Close returned")
				}
			}
		})

		It("should block while a task is in flight", func() {
			p, _ = threadpool.New[int](1)

			started := make(chan struct{})
			unblock := make(chan struct{})
			p.Submit(func() int {
				close(started)
				<-unblock
				return 0
			})
			Eventually(started, time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				p.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, time.Second).Should(BeClosed())
		})

		It("should yield no result for a task submitted after Close", func() {
			p, _ = threadpool.New[int](2)
			p.Close()

			h := p.Submit(func() int { return 1 })

			joined := make(chan bool, 1)
			go func() {
				_, ok := h.Join()
				joined <- ok
			}()
			Eventually(joined, time.Second).Should(Receive(BeFalse()))
		})

		It("should log the dropped task at error level", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			DeferCleanup(zap.ReplaceGlobals(zap.New(core)))

			p, _ = threadpool.New[int](1)
			p.Close()
			_, ok := p.Submit(func() int { return 1 }).Join()
			Expect(ok).To(BeFalse())

			dropped := logs.FilterMessage("task dispatched after teardown").All()
			Expect(dropped).To(HaveLen(1))
			Expect(dropped[0].Level).To(Equal(zapcore.ErrorLevel))
		})

		It("should not count dropped tasks as dispatched", func() {
			p, _ = threadpool.New[int](2)
			p.Submit(func() int { return 1 }).Join()
			p.Close()

			for range 5 {
				p.Submit(func() int { return 1 })
			}

			stats := p.Stats()
			Expect(stats.Submitted).To(Equal(uint64(1)))
			Expect(stats.IdleDispatches + stats.FallbackDispatches).To(Equal(stats.Submitted))
		})

		It("should be idempotent", func() {
			p, _ = threadpool.New[int](2)
			p.Close()
			p.Close()
		})

		It("should not leak goroutines", func() {
			base := runtime.NumGoroutine()
			p, _ = threadpool.New[int](4)

			for i := range 200 {
				p.Submit(func() int { return i })
			}
			p.Close()
			p = nil

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+2))
		})
	})

	Describe("Scoped", func() {
		It("should close the pool when fn returns", func() {
			var inner *threadpool.Pool[int]
			var h *threadpool.JoinHandle[int]
			err := threadpool.Scoped(2, func(sp *threadpool.Pool[int]) error {
				inner = sp
				h = sp.Submit(func() int {
					time.Sleep(20 * time.Millisecond)
					return 3
				})
				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			select {
			case res := <-h.C():
				Expect(res.Data).To(Equal(3))
			default:
				Fail("pool was not drained by Scoped")
			}

			// workers are gone, so a late submit yields nothing
			_, ok := inner.Submit(func() int { return 0 }).Join()
			Expect(ok).To(BeFalse())
		})

		It("should close the pool when fn panics", func() {
			var inner *threadpool.Pool[int]
			Expect(func() {
				_ = threadpool.Scoped(1, func(sp *threadpool.Pool[int]) error {
					inner = sp
					panic("scoped failure")
				})
			}).To(PanicWith("scoped failure"))

			_, ok := inner.Submit(func() int { return 0 }).Join()
			Expect(ok).To(BeFalse())
		})

		It("should return construction errors", func() {
			err := threadpool.Scoped(0, func(sp *threadpool.Pool[int]) error { return nil })
			Expect(srvErrors.IsInvalidWorkerCountError(err)).To(BeTrue())
		})
	})
})
