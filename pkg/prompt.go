package cargobump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// LinePrompter writes the question to Out and reads a single answer line
// from In. It works the same on a terminal and on a pipe.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Prompter. Reaching end of input without an answer
// counts as an empty answer.
func (p LinePrompter) Confirm(question string) (bool, error) {
	if p.Out != nil {
		fmt.Fprintln(p.Out, question)
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return Accepts(strings.TrimRight(line, "\r\n")), nil
}

// StaticPrompter answers every question with its own value without reading input.
type StaticPrompter bool

// Confirm implements Prompter.
func (s StaticPrompter) Confirm(string) (bool, error) {
	return bool(s), nil
}

// Accepts reports whether answer confirms. A blank answer or exactly "n"
// (any case) declines; any other input, including garbage, accepts.
func Accepts(answer string) bool {
	if strings.TrimSpace(answer) == "" || strings.EqualFold(answer, "n") {
		return false
	}
	return true
}
