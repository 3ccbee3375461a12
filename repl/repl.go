package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"jfor/engine"
	"jfor/shared"

	"github.com/chzyer/readline"
)

// Config carries the REPL configuration
type Config struct {
	Engine         *engine.Engine
	Prompt         string
	ContinuePrompt string
	HistoryFile    string
	HistorySize    int
	ShowWelcome    bool
}

// REPL provides the interactive session: single statements execute
// immediately, loop headers open a multiline buffer that executes once the
// matching terminators close every open block. The engine's Environment
// persists across inputs.
type REPL struct {
	engine      *engine.Engine
	input       *InputReader
	out         io.Writer
	showWelcome bool

	buffer []string
	depth  int
}

// NewREPLWithConfig creates a new REPL
func NewREPLWithConfig(cfg Config) (*REPL, error) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "jfor> "
	}
	contPrompt := cfg.ContinuePrompt
	if contPrompt == "" {
		contPrompt = "... "
	}

	input, err := NewInputReader(prompt, contPrompt, cfg.HistoryFile, cfg.HistorySize)
	if err != nil {
		return nil, err
	}

	return &REPL{
		engine:      cfg.Engine,
		input:       input,
		out:         os.Stdout,
		showWelcome: cfg.ShowWelcome,
	}, nil
}

// Run drives the interactive loop until EOF or an exit command
func (r *REPL) Run() error {
	defer r.input.Close()

	if r.showWelcome {
		fmt.Fprintln(r.out, "jfor interactive shell. Type :help for commands, exit to leave.")
	}

	for {
		line, err := r.input.ReadLine(r.depth > 0)
		if err == readline.ErrInterrupt {
			// Ctrl-C abandons any open block
			r.reset()
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if r.depth == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "exit" || trimmed == "quit" {
				return nil
			}
			if strings.HasPrefix(trimmed, ":") {
				r.handleCommand(trimmed)
				continue
			}
		}

		r.feed(line)
	}
}

// feed adds one line to the pending input and executes it once every open
// loop block is closed
func (r *REPL) feed(line string) {
	cl := engine.Classify(line)
	switch {
	case cl.Kind.IsHeader():
		r.depth++
	case cl.Kind == engine.KindTerminator:
		if r.depth == 0 {
			fmt.Fprintln(r.out, "Error: 'end' without an open loop")
			r.reset()
			return
		}
		r.depth--
	}

	r.buffer = append(r.buffer, line)
	if r.depth > 0 {
		return
	}

	src := strings.Join(r.buffer, "\n")
	r.buffer = nil

	if err := r.engine.Run(src); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

// reset drops any partially entered loop block
func (r *REPL) reset() {
	r.buffer = nil
	r.depth = 0
}

// handleCommand executes a REPL command
func (r *REPL) handleCommand(cmd string) {
	switch cmd {
	case ":help":
		fmt.Fprintln(r.out, "Commands:")
		fmt.Fprintln(r.out, "  :help          Show this message")
		fmt.Fprintln(r.out, "  :vars          List environment variables")
		fmt.Fprintln(r.out, "  :reset         Clear the environment")
		fmt.Fprintln(r.out, "  exit, quit     Leave the shell")

	case ":vars":
		env := r.engine.Environment()
		names := env.Names()
		if len(names) == 0 {
			fmt.Fprintln(r.out, "(no variables)")
			return
		}
		for _, name := range names {
			value, _ := env.Get(name)
			fmt.Fprintf(r.out, "%s = %s\n", name, shared.FormatValueForDisplay(value))
		}

	case ":reset":
		r.engine.Environment().Clear()
		fmt.Fprintln(r.out, "Environment cleared")

	default:
		fmt.Fprintf(r.out, "Unknown command: %s (try :help)\n", cmd)
	}
}
