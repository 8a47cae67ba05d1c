package mips

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedContext_ConcurrentAddSymbol_StaysIdempotent(t *testing.T) {
	locked := NewLockedContext(NewContext())

	const goroutines = 32
	results := make([]*ContextSymbol, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = locked.AddSymbol(0x80006000, SectionData, true, nil)
		}()
	}
	wg.Wait()

	for _, sym := range results {
		assert.Same(t, results[0], sym, "every concurrent caller must observe the same underlying symbol")
	}
	assert.Len(t, locked.AllSymbols(), 1)
}

func TestLockedContext_SatisfiesContextStore(t *testing.T) {
	var store ContextStore = NewLockedContext(NewContext())
	sym := store.AddSymbol(0x80007000, SectionRodata, true, nil)
	assert.Equal(t, uint32(0x80007000), sym.Vram)
}
