package repl

import (
	"github.com/chzyer/readline"
)

// InputReader wraps readline with prompt switching for multiline loop entry
type InputReader struct {
	rl         *readline.Instance
	prompt     string
	contPrompt string
}

// NewInputReader creates a new input reader
func NewInputReader(prompt, contPrompt, historyFile string, historySize int) (*InputReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		HistoryLimit:    historySize,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &InputReader{
		rl:         rl,
		prompt:     prompt,
		contPrompt: contPrompt,
	}, nil
}

// ReadLine reads one line; continuation selects the continuation prompt
// while a loop block is still open
func (ir *InputReader) ReadLine(continuation bool) (string, error) {
	if continuation {
		ir.rl.SetPrompt(ir.contPrompt)
	} else {
		ir.rl.SetPrompt(ir.prompt)
	}
	return ir.rl.Readline()
}

// Close releases the underlying readline instance
func (ir *InputReader) Close() error {
	return ir.rl.Close()
}
