package render

// drawPool is a free list of reusable DrawObjects. The engine is
// single-threaded, so a plain slice beats sync.Pool: objects are reset
// deterministically on Put and never reclaimed behind our back.
type drawPool struct {
	free []*DrawObject
}

func newDrawPool() *drawPool {
	return &drawPool{free: make([]*DrawObject, 0, 16)}
}

// Get returns a clean DrawObject, allocating when the free list is
// empty. The pool therefore never exhausts.
func (p *drawPool) Get() *DrawObject {
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return obj
	}
	return &DrawObject{}
}

// Put resets obj and returns it to the free list. A nil obj is
// ignored.
func (p *drawPool) Put(obj *DrawObject) {
	if obj == nil {
		return
	}
	obj.reset()
	p.free = append(p.free, obj)
}

// Len reports the number of idle objects.
func (p *drawPool) Len() int {
	return len(p.free)
}
