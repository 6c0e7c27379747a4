package amalgamate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// inliner carries the traversal state of one run: the set of headers
// already materialized, the fallback resolution root, the output emitter,
// and the expansion graph. A fresh inliner is built per run, so
// traversals are reentrant and independent.
type inliner struct {
	root   string              // library include root, second resolution candidate
	seen   map[string]struct{} // cleaned resolved paths already inlined
	out    *emitter
	graph  *IncludeGraph
	logger *zap.Logger
}

func newInliner(includeRoot string, out *emitter, logger *zap.Logger) *inliner {
	return &inliner{
		root:   includeRoot,
		seen:   make(map[string]struct{}),
		out:    out,
		graph:  newIncludeGraph(),
		logger: logger,
	}
}

// expand reads the header at dir/name and streams its lines into the
// output, recursing into every quoted include encountered for the first
// time. self identifies this file in the expansion graph.
func (in *inliner) expand(dir, name, self string) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open header %s: %w", path, err)
	}
	defer f.Close()

	in.logger.Debug("Expanding header", zap.String("path", path))

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		d, ok := matchInclude(line)
		if !ok {
			if err := in.out.Line(line); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			continue
		}
		if err := in.expandInclude(dir, d, self); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read header %s: %w", path, err)
	}
	return nil
}

// expandInclude handles one include directive found in the file
// identified by self, whose directory is dir. A header seen before is
// dropped without a marker, so every body appears exactly once; the
// resolved path enters the seen set before recursing, which bounds
// cyclic include graphs.
func (in *inliner) expandInclude(dir string, d directive, self string) error {
	resolved, ok := in.resolve(dir, d)
	if !ok {
		return fmt.Errorf("include %q in %s: no such header under %s or %s",
			d.raw, self, dir, in.root)
	}

	key := filepath.Clean(resolved)
	if _, dup := in.seen[key]; dup {
		in.logger.Debug("Skipping already inlined header", zap.String("include", d.raw))
		return nil
	}
	in.seen[key] = struct{}{}
	in.graph.add(self, d.raw)

	if err := in.out.Raw("// #included from: " + d.raw + "\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return in.expand(filepath.Dir(resolved), d.file, d.raw)
}

// resolve tries the candidate search roots in order and returns the first
// path that exists: the including file's own directory, then the library
// include root. The ordered slice keeps the chain open to additional
// roots without touching the recursion.
func (in *inliner) resolve(dir string, d directive) (string, bool) {
	for _, base := range []string{dir, in.root} {
		candidate := filepath.Join(base, d.dir, d.file)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
