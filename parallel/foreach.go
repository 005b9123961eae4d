// Package parallel implements a bounded concurrent loop
package parallel

import "golang.org/x/sync/errgroup"

// ForEach calls body for every integer from 0 to length-1, running at most
// limit calls at once. It returns when all calls have finished.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < length; i++ {
		i := i
		g.Go(func() error {
			body(i)
			return nil
		})
	}
	// body cannot fail
	_ = g.Wait()
}
