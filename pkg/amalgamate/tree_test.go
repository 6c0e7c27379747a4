package amalgamate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIncludeGraphRender(t *testing.T) {
	g := newIncludeGraph()
	g.start("ecs.h")
	g.add("ecs.h", "a.h")
	g.add("a.h", "common.h")
	g.add("ecs.h", "b.h")

	rendered := g.Render()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "ecs.h", lines[0])
	assert.Contains(t, rendered, "a.h")
	assert.Contains(t, rendered, "common.h")
	assert.Contains(t, rendered, "b.h")

	// common.h sits one level deeper than its parent a.h.
	var aDepth, commonDepth int
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, "│ ")
		switch {
		case strings.HasSuffix(trimmed, "── a.h"):
			aDepth = len(line) - len(trimmed)
		case strings.HasSuffix(trimmed, "── common.h"):
			commonDepth = len(line) - len(trimmed)
		}
	}
	assert.Greater(t, commonDepth, aDepth)
}

func TestIncludeGraphEmptyRender(t *testing.T) {
	g := newIncludeGraph()
	assert.Equal(t, "", g.Render())
}

func TestGenerateRecordsExpansionGraph(t *testing.T) {
	root := t.TempDir()
	writeHeader(t, root, "include/ecs.h", "#include \"a.h\"\n#include \"b.h\"\n")
	writeHeader(t, root, "include/a.h", "#include \"common.h\"\n")
	writeHeader(t, root, "include/b.h", "#include \"common.h\"\n")
	writeHeader(t, root, "include/common.h", "struct Common {};\n")

	result, err := Generate(Config{Root: root, Entry: "ecs.h", Project: "lib"}, zap.NewNop())
	require.NoError(t, err)

	rendered := result.Graph.Render()
	assert.True(t, strings.HasPrefix(rendered, "ecs.h"))
	// common.h was first reached through a.h; the b.h re-include adds no edge.
	assert.Equal(t, 1, strings.Count(rendered, "common.h"))
}
