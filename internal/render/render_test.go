package render

import (
	"bytes"
	"testing"

	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_EmitData_IsDeterministic(t *testing.T) {
	ctx := mips.NewContext()
	cfg := mips.DefaultGlobalConfig()

	bytesIn := mips.WordsToBEBytes([]mips.Word{1, 2, 3, 4})
	d := mips.NewData(ctx, cfg, 0x1000, 0x1010, 0x80001000, bytesIn, 0, "")
	d.Analyze()

	var first, second bytes.Buffer
	e1 := &Emitter{W: &first, Color: false, LineEnd: "\n"}
	e2 := &Emitter{W: &second, Color: false, LineEnd: "\n"}

	require.NoError(t, e1.EmitData(d.SymbolList))
	require.NoError(t, e2.EmitData(d.SymbolList))

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "D_80001000:")
}

func TestEmitter_NoColor_EmitsPlainText(t *testing.T) {
	ctx := mips.NewContext()
	cfg := mips.DefaultGlobalConfig()

	bytesIn := mips.WordsToBEBytes([]mips.Word{0xDEADBEEF})
	d := mips.NewData(ctx, cfg, 0x1000, 0x1004, 0x80001000, bytesIn, 0, "")
	d.Analyze()

	var out bytes.Buffer
	e := &Emitter{W: &out, Color: false, LineEnd: "\n"}
	require.NoError(t, e.EmitData(d.SymbolList))

	assert.Equal(t, "D_80001000:\n .word 0xDEADBEEF\n", out.String())
}
