// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join loops over rows.
//
// A Pool is created once per renderer and reused for every frame, so a frame
// costs one channel send per worker rather than a goroutine per row. Each
// call blocks until all of its work is done; calls must not overlap.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for frame := range frames {
//	    pool.ParallelForAtomicBatched(height, 4, func(start, end int) {
//	        for y := start; y < end; y++ {
//	            renderRow(y, frame)
//	        }
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Calling Close multiple times is safe; loops
// issued after Close run sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForAtomicBatched calls fn on disjoint [start, end) ranges that
// cover [0, n). Workers claim batchSize indices at a time from a shared
// atomic counter, so uneven rows balance out. Blocks until all work is done.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic is ParallelForAtomicBatched with one index per claim.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
