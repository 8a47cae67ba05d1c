package mips

import "sync"

// LockedContext adapts a *Context for a parallel driver: spec.md §5 allows
// analyzing independent sections concurrently as long as Context access is
// serialized and lookup-or-insert stays a single atomic step. Every public
// operation here takes the lock for its whole duration, so AddSymbol's
// idempotency guarantee (spec.md §3) still holds under concurrent callers.
type LockedContext struct {
	mu  sync.Mutex
	ctx *Context
}

// NewLockedContext wraps ctx for concurrent use. ctx must not be accessed
// directly by any other goroutine afterwards.
func NewLockedContext(ctx *Context) *LockedContext {
	return &LockedContext{ctx: ctx}
}

func (l *LockedContext) GetSymbol(vram uint32, vromAddress *uint32, tryPlusOffset bool, checkUpperLimit bool) *ContextSymbol {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx.GetSymbol(vram, vromAddress, tryPlusOffset, checkUpperLimit)
}

func (l *LockedContext) GetAnySymbol(vram uint32) *ContextSymbol {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx.GetAnySymbol(vram)
}

func (l *LockedContext) AddSymbol(vram uint32, sectionType SectionType, isAutogenerated bool, symbolVrom *uint32) *ContextSymbol {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx.AddSymbol(vram, sectionType, isAutogenerated, symbolVrom)
}

func (l *LockedContext) AddJumpTableLabel(vram uint32, isAutogenerated bool) *ContextSymbol {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx.AddJumpTableLabel(vram, isAutogenerated)
}

func (l *LockedContext) EnqueuePointerInData(vram uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ctx.EnqueuePointerInData(vram)
}

func (l *LockedContext) PopPointerInData(vram uint32) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx.PopPointerInData(vram)
}

func (l *LockedContext) AllSymbols() []*ContextSymbol {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx.AllSymbols()
}
