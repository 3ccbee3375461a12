package engine

import (
	"io"
	"os"
	"strings"

	"jfor/errors"
	"jfor/logging"
	"jfor/runtime"
	"jfor/shared"
)

// Engine drives a whole program run: it owns the program text, the shared
// Environment, the expression runtime and the output writer. Loop executors
// and the statement executor are methods on it and re-enter each other as
// nesting demands.
type Engine struct {
	runtime runtime.ExpressionRuntime
	env     *Environment
	out     io.Writer
	log     logging.Logger
	verbose bool

	lines []string
	// classified memoizes per-line classification; blocks memoizes body
	// resolution per header line. Both depend only on the static text, so
	// re-entering an outer loop reuses them instead of re-scanning.
	classified []*ClassifiedLine
	blocks     map[int]blockRange
}

type blockRange struct {
	bodyStart int
	bodyEnd   int
	next      int
}

// Config carries the engine dependencies
type Config struct {
	Runtime runtime.ExpressionRuntime
	Output  io.Writer
	Logger  logging.Logger
	Verbose bool
}

// New creates an engine writing to stdout with a default logger
func New(rt runtime.ExpressionRuntime) *Engine {
	return NewWithConfig(Config{Runtime: rt})
}

// NewWithConfig creates an engine with explicit dependencies
func NewWithConfig(cfg Config) *Engine {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	return &Engine{
		runtime: cfg.Runtime,
		env:     NewEnvironment(),
		out:     out,
		log:     log.WithComponent("engine"),
		verbose: cfg.Verbose,
		blocks:  make(map[int]blockRange),
	}
}

// Environment exposes the shared environment, e.g. for the REPL's variable
// listing. The same instance stays live across Run calls.
func (e *Engine) Environment() *Environment {
	return e.env
}

// Run executes a complete program text. The text is split into lines once;
// classification and block resolution are recomputed lazily for the new
// text, while the Environment carries over from any previous run.
func (e *Engine) Run(src string) error {
	e.lines = strings.Split(src, "\n")
	e.classified = make([]*ClassifiedLine, len(e.lines))
	e.blocks = make(map[int]blockRange)

	if e.verbose {
		e.log.Debug("starting program run", logging.IntField("lines", len(e.lines)))
	}

	return e.execRange(0, len(e.lines))
}

// classifyAt returns the memoized classification of line i
func (e *Engine) classifyAt(i int) *ClassifiedLine {
	if e.classified[i] == nil {
		e.classified[i] = Classify(e.lines[i])
	}
	return e.classified[i]
}

// eval delegates one expression to the evaluator with a snapshot of the
// environment. Failures come back as evaluation errors carrying the
// expression text; the offending line is attached here.
func (e *Engine) eval(expr string, line int) (interface{}, error) {
	value, err := e.runtime.Eval(expr, e.env.Snapshot())
	if err != nil {
		if execErr, ok := err.(*errors.ExecutionError); ok {
			if execErr.Line == 0 {
				execErr.WithLine(line+1, strings.TrimSpace(e.lines[line]))
			}
			return nil, execErr
		}
		return nil, errors.NewEvaluationError("EVAL_ERROR", err.Error(), expr).
			WithLine(line+1, strings.TrimSpace(e.lines[line])).
			Wrap(err)
	}
	return value, nil
}

// emit writes one line of print output, unbuffered and in program order
func (e *Engine) emit(value interface{}) error {
	_, err := io.WriteString(e.out, shared.FormatValueForDisplay(value)+"\n")
	if err != nil {
		return errors.NewSystemError("OUTPUT_WRITE_ERROR", err.Error()).Wrap(err)
	}
	return nil
}
