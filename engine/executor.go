package engine

import (
	"strings"

	"jfor/errors"
	"jfor/logging"
)

// execRange executes the half-open line range [start, end) once, in order.
// Headers resolve their block and dispatch to the matching loop executor,
// which re-enters execRange for every iteration of the body. Execution
// always proceeds to the end of the range unless an error propagates.
func (e *Engine) execRange(start, end int) error {
	i := start
	for i < end {
		cl := e.classifyAt(i)

		if e.verbose {
			e.log.Debug("dispatching line",
				logging.IntField("line", i+1),
				logging.StringField("kind", cl.Kind.String()))
		}

		switch cl.Kind {
		case KindBlank:
			i++

		case KindCounterHeader:
			bodyStart, bodyEnd, next, err := e.matchBlock(i)
			if err != nil {
				return err
			}
			if err := e.runCounterLoop(cl.Counter, i, bodyStart, bodyEnd); err != nil {
				return err
			}
			i = next

		case KindIteratorHeader:
			bodyStart, bodyEnd, next, err := e.matchBlock(i)
			if err != nil {
				return err
			}
			if err := e.runIteratorLoop(cl.Iterator, i, bodyStart, bodyEnd); err != nil {
				return err
			}
			i = next

		case KindCStyleHeader:
			bodyStart, bodyEnd, next, err := e.matchBlock(i)
			if err != nil {
				return err
			}
			if err := e.runCStyleLoop(cl.CStyle, i, bodyStart, bodyEnd); err != nil {
				return err
			}
			i = next

		case KindTerminator:
			// Block matching excludes terminators from every body range, so
			// reaching one here means the matcher is broken. Fail loudly
			// instead of returning silently.
			return errors.NewSystemError(
				"UNMATCHED_TERMINATOR",
				"'end' encountered outside any loop body; block matching is inconsistent",
			).WithLine(i+1, strings.TrimSpace(e.lines[i]))

		case KindPrint:
			value, err := e.eval(cl.Expr, i)
			if err != nil {
				return err
			}
			if err := e.emit(value); err != nil {
				return err
			}
			i++

		case KindAssignment:
			value, err := e.eval(cl.Expr, i)
			if err != nil {
				return err
			}
			e.env.Set(cl.Target, value)
			i++

		default:
			return errors.NewSyntaxError(
				"UNRECOGNIZED_LINE",
				"unrecognized line",
				i+1,
				strings.TrimSpace(e.lines[i]),
			)
		}
	}

	return nil
}
