// internal/pool/pool.go
package pool

import "log"

// ObjectPool recycles instances instead of allocating a fresh one per use.
// An instance is either free (owned by the pool) or active (owned by the
// caller that obtained it from Get), never both.
//
// The pool grows without bound: Get never fails, it constructs a new
// instance through the factory when the free list is empty. Availability
// is favored over a memory cap.
//
// The pool is not safe for concurrent use; all calls must come from the
// single simulation goroutine that owns it.
type ObjectPool[T comparable] struct {
	factory  func() T
	onGet    func(T)
	onReturn func(T)

	free   []T // LIFO
	active map[T]struct{}
}

// NewObjectPool creates a pool around the given factory. onGet and onReturn
// are optional hooks invoked on checkout and return; onReturn is the place
// for a full state reset.
func NewObjectPool[T comparable](factory func() T, onGet, onReturn func(T)) *ObjectPool[T] {
	if factory == nil {
		panic("pool: factory must not be nil")
	}
	return &ObjectPool[T]{
		factory:  factory,
		onGet:    onGet,
		onReturn: onReturn,
		active:   make(map[T]struct{}),
	}
}

// Prewarm constructs n instances and places them on the free list.
func (p *ObjectPool[T]) Prewarm(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, p.factory())
	}
}

// Get pops a free instance, or constructs one when the free list is empty.
// The instance is moved to the active set and owned by the caller until
// it is passed back through Return.
func (p *ObjectPool[T]) Get() T {
	var instance T
	if n := len(p.free); n > 0 {
		instance = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		instance = p.factory()
	}
	p.active[instance] = struct{}{}
	if p.onGet != nil {
		p.onGet(instance)
	}
	return instance
}

// Return hands an active instance back to the pool after running onReturn.
// Returning an instance the pool does not consider active is a caller
// error; the call is logged and ignored so a bookkeeping bug cannot
// corrupt the free list mid-tick.
func (p *ObjectPool[T]) Return(instance T) {
	if _, ok := p.active[instance]; !ok {
		log.Printf("pool: ignoring return of instance not checked out from this pool")
		return
	}
	delete(p.active, instance)
	if p.onReturn != nil {
		p.onReturn(instance)
	}
	p.free = append(p.free, instance)
}

// ReturnAll forces every active instance back to the free list, invoking
// onReturn on each. Used for level teardown.
func (p *ObjectPool[T]) ReturnAll() {
	for instance := range p.active {
		delete(p.active, instance)
		if p.onReturn != nil {
			p.onReturn(instance)
		}
		p.free = append(p.free, instance)
	}
}

// Clear drops both lists. Instances still referenced elsewhere are left to
// the garbage collector.
func (p *ObjectPool[T]) Clear() {
	p.free = nil
	p.active = make(map[T]struct{})
}

// FreeCount reports how many instances sit on the free list.
func (p *ObjectPool[T]) FreeCount() int {
	return len(p.free)
}

// ActiveCount reports how many instances are checked out.
func (p *ObjectPool[T]) ActiveCount() int {
	return len(p.active)
}
