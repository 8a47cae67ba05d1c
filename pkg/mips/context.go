package mips

import "sort"

// Context is the process-wide symbol table described in spec.md §3. It
// keeps every ContextSymbol in a flat arena of pointers, indexed by VRAM
// (and VROM when known). Sections and symbol spans hold the same
// *ContextSymbol pointers the arena holds, so an attribute set through a
// span is visible through the Context and vice versa.
type Context struct {
	arena      []*ContextSymbol
	byVram     map[uint32]int
	byVrom     map[uint32]int
	sortedVram []uint32 // kept sorted ascending, mirrors arena membership

	// pendingPointers is the "pointers-in-data" discovery queue (spec.md
	// §3, §4.3): VRAMs the text analyzer (out of scope here) has observed
	// being referenced as data pointers, awaiting promotion.
	pendingPointers map[uint32]struct{}
}

// NewContext returns an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{
		byVram:          make(map[uint32]int),
		byVrom:          make(map[uint32]int),
		pendingPointers: make(map[uint32]struct{}),
	}
}

// GetSymbol performs an exact lookup at vram, or, when tryPlusOffset is
// set, falls back to the nearest symbol at or before vram. When
// checkUpperLimit is also set, that fallback is only returned if vram
// falls strictly within the candidate's user-declared size; with no
// declared size the fallback is rejected rather than guessed at.
func (c *Context) GetSymbol(vram uint32, vromAddress *uint32, tryPlusOffset bool, checkUpperLimit bool) *ContextSymbol {
	if idx, ok := c.byVram[vram]; ok {
		return c.arena[idx]
	}

	if !tryPlusOffset {
		return nil
	}

	candidate := c.predecessor(vram)
	if candidate == nil {
		return nil
	}

	if !checkUpperLimit {
		return candidate
	}

	if !candidate.HasUserDeclaredSize() {
		return nil
	}

	if vram < candidate.Vram+candidate.GetSize() {
		return candidate
	}

	return nil
}

// predecessor returns the symbol with the largest VRAM <= vram, or nil.
func (c *Context) predecessor(vram uint32) *ContextSymbol {
	n := len(c.sortedVram)
	// first index with sortedVram[i] > vram
	i := sort.Search(n, func(i int) bool { return c.sortedVram[i] > vram })
	if i == 0 {
		return nil
	}
	return c.arena[c.byVram[c.sortedVram[i-1]]]
}

// GetAnySymbol performs a plain exact lookup, ignoring section affinity.
// Used to answer "is anything at all already known at this address"
// (spec.md §4.3, pass 1 pointer-queue admission).
func (c *Context) GetAnySymbol(vram uint32) *ContextSymbol {
	if idx, ok := c.byVram[vram]; ok {
		return c.arena[idx]
	}
	return nil
}

// AddSymbol returns the existing symbol at vram if one exists, or creates,
// registers, and returns a new one. It is idempotent on vram alone (spec.md
// §3 invariant: "two calls with the same v return the same underlying
// ContextSymbol").
func (c *Context) AddSymbol(vram uint32, sectionType SectionType, isAutogenerated bool, symbolVrom *uint32) *ContextSymbol {
	if idx, ok := c.byVram[vram]; ok {
		return c.arena[idx]
	}

	sym := &ContextSymbol{
		Vram:            vram,
		SectionType:     sectionType,
		IsAutogenerated: isAutogenerated,
		Name:            autoSymbolName(sectionType, vram),
	}
	if symbolVrom != nil {
		sym.HasVrom = true
		sym.Vrom = *symbolVrom
	}

	c.register(sym)
	return sym
}

// AddJumpTableLabel is AddSymbol specialized for jump-table label targets
// (spec.md §4.4): the resulting symbol is additionally flagged as a jump
// table head when newly created.
func (c *Context) AddJumpTableLabel(vram uint32, isAutogenerated bool) *ContextSymbol {
	if idx, ok := c.byVram[vram]; ok {
		return c.arena[idx]
	}

	sym := c.AddSymbol(vram, SectionUnknown, isAutogenerated, nil)
	sym.MarkJumpTable()
	return sym
}

func (c *Context) register(sym *ContextSymbol) {
	idx := len(c.arena)
	c.arena = append(c.arena, sym)
	c.byVram[sym.Vram] = idx
	if sym.HasVrom {
		c.byVrom[sym.Vrom] = idx
	}

	i := sort.Search(len(c.sortedVram), func(i int) bool { return c.sortedVram[i] >= sym.Vram })
	c.sortedVram = append(c.sortedVram, 0)
	copy(c.sortedVram[i+1:], c.sortedVram[i:])
	c.sortedVram[i] = sym.Vram
}

// EnqueuePointerInData records vram as a pending "pointer discovered in
// data" candidate, to be promoted to a symbol the next time a section
// observes this address (spec.md §3, "newPointersInData").
func (c *Context) EnqueuePointerInData(vram uint32) {
	c.pendingPointers[vram] = struct{}{}
}

// PopPointerInData reports whether vram is pending promotion and, if so,
// removes it from the queue. This is the Context half of
// Section.popPointerInDataReference (spec.md §4.2).
func (c *Context) PopPointerInData(vram uint32) bool {
	if _, ok := c.pendingPointers[vram]; ok {
		delete(c.pendingPointers, vram)
		return true
	}
	return false
}

// AllSymbols returns every known symbol, in arena (insertion) order. Used
// by dumps and the symbol-addrs exporter (spec.md §4.8).
func (c *Context) AllSymbols() []*ContextSymbol {
	out := make([]*ContextSymbol, len(c.arena))
	copy(out, c.arena)
	return out
}
