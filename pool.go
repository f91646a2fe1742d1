package tachyon

import "sync"

// BufferPool hands out Buffers of one fixed capacity so concurrent encoders
// can each own a buffer without allocating per call.
type BufferPool struct {
	capacity int
	pool     sync.Pool
}

func NewBufferPool(capacity int) *BufferPool {
	p := &BufferPool{capacity: capacity}
	p.pool.New = func() any {
		return NewBuffer(capacity)
	}
	return p
}

// Get returns a reset buffer.
func (p *BufferPool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Reset()
	return b
}

// Put returns b to the pool. Buffers of another capacity are dropped.
// b must not be used afterwards, including slices from b.Bytes.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil || b.Cap() != p.capacity {
		return
	}
	b.Reset()
	p.pool.Put(b)
}

// Capacity is the size of the buffers handed out.
func (p *BufferPool) Capacity() int { return p.capacity }
