package api

import "golang.org/x/sync/errgroup"

// forEach calls fn for every index in [0, n), running at most p.workers
// calls at once. fn must only write to slot i of its outputs.
func (p *Protocol) forEach(n int, fn func(i int)) {
	if p.workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	g.Wait()
}
