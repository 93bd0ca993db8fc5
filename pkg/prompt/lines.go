package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
)

// Lines reads one answer per line. Questions are written to out.
type Lines struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLines creates a line based prompter
func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{in: bufio.NewReader(in), out: out}
}

func (l *Lines) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		if err == io.EOF {
			return "", errors.New(errors.ErrPrompt, "no input")
		}
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
	}
	return strings.TrimSpace(line), nil
}

// Select accepts either the 1-based number of an option or its text
func (l *Lines) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errors.New(errors.ErrInvalidInput, "nothing to choose from")
	}

	fmt.Fprintln(l.out, message)
	for i, option := range options {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, option)
	}
	fmt.Fprint(l.out, "> ")

	answer, err := l.readLine()
	if err != nil {
		return -1, err
	}

	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return n - 1, nil
	}
	for i, option := range options {
		if strings.EqualFold(option, answer) {
			return i, nil
		}
	}
	return -1, errors.Newf(errors.ErrInvalidInput, "invalid selection %q", answer)
}

func (l *Lines) Text(message, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(l.out, "%s (default: %s): ", message, defaultValue)
	} else {
		fmt.Fprintf(l.out, "%s: ", message)
	}

	answer, err := l.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Secret reads a line like Text; input from a pipe is never echoed
func (l *Lines) Secret(message string) (string, error) {
	fmt.Fprintf(l.out, "%s: ", message)
	return l.readLine()
}

func (l *Lines) Confirm(message string, defaultValue bool) (bool, error) {
	marker := "[y/N]"
	if defaultValue {
		marker = "[Y/n]"
	}
	fmt.Fprintf(l.out, "%s %s: ", message, marker)

	answer, err := l.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Newf(errors.ErrInvalidInput, "expected yes or no, got %q", answer)
	}
}
