package engine

import (
	"strings"

	"jfor/errors"
)

// matchBlock resolves the body of the header at line header: it scans
// forward from the line after the header, counting nested headers and
// terminators, and returns the half-open body range plus the index of the
// line after the matching terminator. Nested blocks are left in the body
// verbatim; they are matched again when the body executes. Resolutions are
// memoized since they depend only on the static text.
func (e *Engine) matchBlock(header int) (bodyStart, bodyEnd, next int, err error) {
	if cached, ok := e.blocks[header]; ok {
		return cached.bodyStart, cached.bodyEnd, cached.next, nil
	}

	bodyStart = header + 1
	depth := 1

	for i := bodyStart; i < len(e.lines); i++ {
		cl := e.classifyAt(i)
		switch {
		case cl.Kind.IsHeader():
			depth++
		case cl.Kind == KindTerminator:
			depth--
			if depth == 0 {
				e.blocks[header] = blockRange{bodyStart: bodyStart, bodyEnd: i, next: i + 1}
				return bodyStart, i, i + 1, nil
			}
		}
	}

	return 0, 0, 0, errors.NewSyntaxError(
		"MISSING_TERMINATOR",
		"missing 'end' for loop header",
		header+1,
		strings.TrimSpace(e.lines[header]),
	)
}
