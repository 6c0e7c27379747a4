package amalgamate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchInclude(t *testing.T) {
	tests := []struct {
		name string
		line string
		want directive
		ok   bool
	}{
		{
			name: "plain include",
			line: `#include "Entity.h"`,
			want: directive{raw: "Entity.h", file: "Entity.h"},
			ok:   true,
		},
		{
			name: "subdirectory include",
			line: `#include "util/log.h"`,
			want: directive{raw: "util/log.h", dir: "util", file: "log.h"},
			ok:   true,
		},
		{
			name: "nested subdirectory include",
			line: `#include "a/b/c.h"`,
			want: directive{raw: "a/b/c.h", dir: "a/b", file: "c.h"},
			ok:   true,
		},
		{
			name: "leading whitespace",
			line: `    #include "Pool.h"`,
			want: directive{raw: "Pool.h", file: "Pool.h"},
			ok:   true,
		},
		{
			name: "no space before quote",
			line: `#include"Id.h"`,
			want: directive{raw: "Id.h", file: "Id.h"},
			ok:   true,
		},
		{
			name: "angle bracket include is ignored",
			line: `#include <vector>`,
			ok:   false,
		},
		{
			name: "missing closing quote is ordinary text",
			line: `#include "broken.h`,
			ok:   false,
		},
		{
			name: "ordinary code line",
			line: `class EntityManager;`,
			ok:   false,
		},
		{
			name: "include mentioned in a comment body",
			line: `// see the #include "notes" below`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchInclude(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
