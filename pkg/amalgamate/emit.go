package amalgamate

import (
	"io"
	"strings"
)

// emitter writes body lines to the output document, collapsing runs of
// blank lines. The blank counter spans the whole document rather than a
// single source file, so a run assembled from the tail of one header and
// the head of the next still collapses to one line.
type emitter struct {
	w      io.Writer
	blanks int
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{w: w}
}

// Line emits one body line. Whitespace-only lines survive only as the
// first of a run; any other line resets the run and is written with
// trailing whitespace stripped and a normalized newline.
func (e *emitter) Line(line string) error {
	if strings.TrimSpace(line) == "" {
		e.blanks++
		if e.blanks >= 2 {
			return nil
		}
		_, err := io.WriteString(e.w, "\n")
		return err
	}
	e.blanks = 0
	_, err := io.WriteString(e.w, strings.TrimRight(line, " \t\r\f\v")+"\n")
	return err
}

// Raw writes s verbatim, bypassing the blank-run accounting. Marker
// comments go through here so they do not interrupt a blank run.
func (e *emitter) Raw(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}
