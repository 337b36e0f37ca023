package threadpool

// Next exposes the round robin cursor to tests.
func (p *Pool[T]) Next() int {
	return p.next()
}
