package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]Target{
		"python": TargetPython,
		"py":     TargetPython,
		"csharp": TargetCSharp,
		"cs":     TargetCSharp,
		"c#":     TargetCSharp,
		"java":   TargetJava,
		" JAVA ": TargetJava,
	} {
		got, err := ParseTarget(in)
		require.NoError(t, err, "ParseTarget(%q)", in)
		assert.Equal(t, want, got, "ParseTarget(%q)", in)
	}

	_, err := ParseTarget("rust")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rust")
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "python", TargetPython.String())
	assert.Equal(t, "csharp", TargetCSharp.String())
	assert.Equal(t, "java", TargetJava.String())
	assert.Equal(t, "unknown", Target(9).String())
}

func TestSplitGeneric(t *testing.T) {
	base, args, ok := SplitGeneric("List<String>")
	require.True(t, ok)
	assert.Equal(t, "List", base)
	assert.Equal(t, []string{"String"}, args)

	base, args, ok = SplitGeneric("Map<String, List<int>>")
	require.True(t, ok)
	assert.Equal(t, "Map", base)
	assert.Equal(t, []string{"String", "List<int>"}, args)

	base, args, ok = SplitGeneric("Dict< K , V >")
	require.True(t, ok)
	assert.Equal(t, "Dict", base)
	assert.Equal(t, []string{"K", "V"}, args)
}

func TestSplitGenericRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"Pedido", "List<", "List<>", "<T>", "List<T", "List<T>>"} {
		_, _, ok := SplitGeneric(raw)
		assert.False(t, ok, "SplitGeneric(%q)", raw)
	}
}

func TestWriterIndents(t *testing.T) {
	w := NewWriter("    ")
	w.Line("class Pedido:")
	w.In()
	w.Line("pass")
	w.Out()
	w.Blank()
	assert.Equal(t, "class Pedido:\n    pass\n\n", w.String())
}

func TestWriterTrimBlank(t *testing.T) {
	w := NewWriter("  ")
	w.Line("a")
	w.Blank()
	w.TrimBlank()
	w.Line("}")
	assert.Equal(t, "a\n}\n", w.String())
}
