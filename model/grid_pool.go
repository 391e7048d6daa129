package model

import "sync"

// ViewPool recycles view buffers so a render loop does not allocate a grid copy every tick
type ViewPool struct {
	pool sync.Pool
}

func NewViewPool() *ViewPool {
	return &ViewPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &View{}
			},
		},
	}
}

// Read takes a view of the current buffer of s, reusing a pooled buffer when one is free
func (p *ViewPool) Read(s *GridState) *View {
	v := p.pool.Get().(*View)
	s.readInto(v)
	v.pool = p
	return v
}

// Put returns a view to the pool, clearing its state
func (p *ViewPool) Put(v *View) {
	clear(v.cells)
	v.size = 0
	v.tick = 0
	v.pool = nil
	p.pool.Put(v)
}
