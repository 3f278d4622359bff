package input

import (
	"errors"
	"os"

	"github.com/peterh/liner"
)

// ErrAborted is returned by Prompt when the user cancels the current
// line with ctrl-C.
var ErrAborted = errors.New("input: prompt aborted")

// Completer proposes completions for the current line.
type Completer func(line string) []string

// Interactive is a history-capable line editor for prompt-driven tools.
// Close must be called to restore the terminal state.
type Interactive struct {
	state *liner.State
}

// NewInteractive returns a line editor. Ctrl-C aborts the current line
// and tab prints completion candidates.
func NewInteractive() *Interactive {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetTabCompletionStyle(liner.TabPrints)
	return &Interactive{state: state}
}

// WithCompleter installs a completion callback and returns the editor.
func (i *Interactive) WithCompleter(complete Completer) *Interactive {
	i.state.SetCompleter(liner.Completer(complete))
	return i
}

// Prompt displays prompt and reads one edited line. Non-empty lines are
// appended to the history. Returns ErrAborted on ctrl-C and io.EOF when
// input is exhausted.
func (i *Interactive) Prompt(prompt string) (string, error) {
	line, err := i.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		i.state.AppendHistory(line)
	}
	return line, nil
}

// LoadHistory reads prompt history from path. A missing file is not an
// error.
func (i *Interactive) LoadHistory(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = i.state.ReadHistory(f)
	return err
}

// SaveHistory writes prompt history to path.
func (i *Interactive) SaveHistory(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = i.state.WriteHistory(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close restores the terminal and releases the editor.
func (i *Interactive) Close() error {
	return i.state.Close()
}
