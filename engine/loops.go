package engine

import (
	"fmt"
	"strings"

	"jfor/errors"
	"jfor/logging"
)

// runCounterLoop executes `for <var> = <start> to <end> [by <step>] do`.
// Bounds are inclusive in both directions; the sign of step selects the
// direction. A step of zero is rejected before any iteration runs.
func (e *Engine) runCounterLoop(h *CounterHeader, header, bodyStart, bodyEnd int) error {
	start, err := e.evalNumber(h.Start, header)
	if err != nil {
		return err
	}
	end, err := e.evalNumber(h.End, header)
	if err != nil {
		return err
	}

	step := 1.0
	if h.Step != "" {
		step, err = e.evalNumber(h.Step, header)
		if err != nil {
			return err
		}
	}

	if step == 0 {
		return errors.NewConfigurationError("ZERO_STEP", "by step cannot be 0").
			WithLine(header+1, strings.TrimSpace(e.lines[header]))
	}

	if e.verbose {
		e.log.Debug("counter loop",
			logging.StringField("var", h.Var),
			logging.Float64Field("start", start),
			logging.Float64Field("end", end),
			logging.Float64Field("step", step))
	}

	for n := start; (step > 0 && n <= end) || (step < 0 && n >= end); n += step {
		e.env.Set(h.Var, n)
		if err := e.execRange(bodyStart, bodyEnd); err != nil {
			return err
		}
	}

	return nil
}

// runIteratorLoop executes `for <var> in <expr> do`. Sequences iterate in
// their natural order; strings iterate per character. An empty collection
// runs the body zero times.
func (e *Engine) runIteratorLoop(h *IteratorHeader, header, bodyStart, bodyEnd int) error {
	source, err := e.eval(h.Source, header)
	if err != nil {
		return err
	}

	bind := func(value interface{}) error {
		e.env.Set(h.Var, value)
		return e.execRange(bodyStart, bodyEnd)
	}

	switch collection := source.(type) {
	case []interface{}:
		for _, element := range collection {
			if err := bind(element); err != nil {
				return err
			}
		}
	case string:
		for _, r := range collection {
			if err := bind(string(r)); err != nil {
				return err
			}
		}
	default:
		return errors.NewEvaluationError(
			"VALUE_NOT_ITERABLE",
			fmt.Sprintf("value of type %T is not iterable", source),
			h.Source,
		).WithLine(header+1, strings.TrimSpace(e.lines[header]))
	}

	return nil
}

// runCStyleLoop executes `for ( <init> ; <cond> ; <step> ) do`: init once,
// then condition, body, step, repeat. An empty condition is always true;
// with no break statement in the language, such a loop terminates only
// through external means.
func (e *Engine) runCStyleLoop(h *CStyleHeader, header, bodyStart, bodyEnd int) error {
	if err := e.runClause(h.Init, header); err != nil {
		return err
	}

	for {
		ok, err := e.evalCondition(h.Cond, header)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := e.execRange(bodyStart, bodyEnd); err != nil {
			return err
		}

		if err := e.runClause(h.Step, header); err != nil {
			return err
		}
	}
}

// runClause executes an init or step clause: an assignment clause binds the
// evaluated right-hand side, a bare clause is evaluated for side effect and
// its value discarded, an absent clause does nothing.
func (e *Engine) runClause(c Clause, header int) error {
	if c.IsEmpty() {
		return nil
	}

	value, err := e.eval(c.Expr, header)
	if err != nil {
		return err
	}

	if c.IsAssignment() {
		e.env.Set(c.Name, value)
	}
	return nil
}

// evalCondition evaluates a C-style condition clause under the evaluator's
// truthiness rules: nil and false are false, everything else is true.
func (e *Engine) evalCondition(cond string, header int) (bool, error) {
	if cond == "" {
		return true, nil
	}

	value, err := e.eval(cond, header)
	if err != nil {
		return false, err
	}
	return isTruthy(value), nil
}

// evalNumber evaluates an expression that must produce a number
func (e *Engine) evalNumber(expr string, header int) (float64, error) {
	value, err := e.eval(expr, header)
	if err != nil {
		return 0, err
	}

	n, ok := value.(float64)
	if !ok {
		return 0, errors.NewEvaluationError(
			"VALUE_NOT_NUMERIC",
			fmt.Sprintf("expected a number, got %T", value),
			expr,
		).WithLine(header+1, strings.TrimSpace(e.lines[header]))
	}
	return n, nil
}

// isTruthy applies the host value system's truthiness rules
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}
