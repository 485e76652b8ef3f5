// Package pool provides typed object pooling for short-lived buffers used
// while formatting diagnostics and log lines.
package pool

import (
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool with an optional reset hook.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called on every Get
}

// NewPool creates a pool that builds new objects with factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{New: func() any { return factory() }},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// BufferPool hands out byte buffers grouped into capacity buckets.
type BufferPool struct {
	buckets []int
	pools   []*Pool[[]byte]
}

// NewBufferPool creates a pool with buckets from 64 bytes to 4 KiB.
func NewBufferPool() *BufferPool {
	bp := &BufferPool{buckets: []int{64, 256, 1024, 4096}}
	for _, size := range bp.buckets {
		capacity := size
		bp.pools = append(bp.pools, NewPoolWithReset(
			func() *[]byte {
				buf := make([]byte, 0, capacity)
				return &buf
			},
			func(buf *[]byte) { *buf = (*buf)[:0] },
		))
	}
	return bp
}

// Get returns an empty buffer with at least minCap capacity. Requests larger
// than the biggest bucket are allocated directly.
func (bp *BufferPool) Get(minCap int) *[]byte {
	if i := bp.bucket(minCap); i >= 0 {
		return bp.pools[i].Get()
	}
	buf := make([]byte, 0, minCap)
	return &buf
}

// Put returns buf to the bucket matching its capacity. Buffers that grew
// past the largest bucket or are smaller than the smallest are dropped.
func (bp *BufferPool) Put(buf *[]byte) {
	if buf == nil {
		return
	}
	c := cap(*buf)
	for i := len(bp.buckets) - 1; i >= 0; i-- {
		if c >= bp.buckets[i] {
			if c <= bp.buckets[len(bp.buckets)-1] {
				bp.pools[i].Put(buf)
			}
			return
		}
	}
}

func (bp *BufferPool) bucket(minCap int) int {
	for i, size := range bp.buckets {
		if size >= minCap {
			return i
		}
	}
	return -1
}

var buffers = NewBufferPool()

// GetBuffer retrieves a buffer from the shared pool.
func GetBuffer(minCap int) *[]byte { return buffers.Get(minCap) }

// PutBuffer returns a buffer to the shared pool.
func PutBuffer(buf *[]byte) { buffers.Put(buf) }
