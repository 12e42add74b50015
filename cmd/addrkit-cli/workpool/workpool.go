// Package workpool fans e-mail addresses out over a fixed set of workers, so
// slow MX lookups don't serialize a whole input stream.
package workpool

import (
	"context"
	"sync"
)

type Task struct {
	Ctx   context.Context
	Email string
}

type Pool struct {
	wg    sync.WaitGroup
	tasks chan Task
}

// Start launches the workers. Each worker runs fn, which should drain the
// channel until it closes.
func (p *Pool) Start(workers int, fn func(tasks <-chan Task)) {

	p.tasks = make(chan Task)
	p.wg.Add(workers)
	for i := workers; i > 0; i-- {
		go func() {
			defer p.wg.Done()
			fn(p.tasks)
		}()
	}
}

// Submit blocks until a worker picks up the task.
func (p *Pool) Submit(t Task) {
	p.tasks <- t
}

// Wait closes the task channel and blocks until all workers have finished.
func (p *Pool) Wait() {
	close(p.tasks)
	p.wg.Wait()
}
