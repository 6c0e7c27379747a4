package amalgamate

import (
	"regexp"
	"strings"
)

// includePattern matches a quoted local include directive. Angle-bracket
// system includes and near-misses deliberately do not match; they pass
// through as ordinary text.
var includePattern = regexp.MustCompile(`^\s*#include\s*"(.*)"`)

// directive is the split form of one quoted include path. It lives only
// for the line that produced it.
type directive struct {
	raw  string // path exactly as written between the quotes
	dir  string // directory part, empty when the path has no separator
	file string // basename
}

// matchInclude classifies a source line, splitting the quoted path on its
// last separator. Include paths use forward slashes regardless of host
// platform.
func matchInclude(line string) (directive, bool) {
	m := includePattern.FindStringSubmatch(line)
	if m == nil {
		return directive{}, false
	}
	raw := m[1]
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		return directive{raw: raw, dir: raw[:i], file: raw[i+1:]}, true
	}
	return directive{raw: raw, file: raw}, true
}
