package mips

// ContextStore is the capability set sections need from a symbol table.
// *Context implements it directly; LockedContext wraps a *Context with a
// mutex so a parallel driver can share one store across concurrently
// analyzed sections (spec.md §5).
type ContextStore interface {
	GetSymbol(vram uint32, vromAddress *uint32, tryPlusOffset bool, checkUpperLimit bool) *ContextSymbol
	GetAnySymbol(vram uint32) *ContextSymbol
	AddSymbol(vram uint32, sectionType SectionType, isAutogenerated bool, symbolVrom *uint32) *ContextSymbol
	AddJumpTableLabel(vram uint32, isAutogenerated bool) *ContextSymbol
	EnqueuePointerInData(vram uint32)
	PopPointerInData(vram uint32) bool
	AllSymbols() []*ContextSymbol
}

var (
	_ ContextStore = (*Context)(nil)
	_ ContextStore = (*LockedContext)(nil)
)
