package workerpool

import (
	"context"

	"github.com/panjf2000/ants/v2"
)

type Pool struct {
	pool *ants.Pool
}

func New(size int) (*Pool, error) {
	p, err := ants.NewPool(size, ants.WithNonblocking(false))
	if err != nil {
		return nil, err
	}
	return &Pool{pool: p}, nil
}

// Submit enqueues a job. With a full pool the call blocks until a worker
// frees up, so a size-1 pool serializes all submitted jobs. The job always
// runs, even with an already-cancelled ctx; jobs that must not proceed
// after cancellation check ctx themselves, so submitters waiting on a
// completion signal are never left hanging.
func (p *Pool) Submit(ctx context.Context, job func(ctx context.Context)) error {
	return p.pool.Submit(func() {
		job(ctx)
	})
}

func (p *Pool) Stop() {
	p.pool.Release()
}

func (p *Pool) Workers() int {
	return p.pool.Cap()
}
