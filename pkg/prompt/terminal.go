package prompt

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
)

// Terminal prompts with pterm interactive widgets
type Terminal struct{}

// NewTerminal creates a terminal prompter
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errors.New(errors.ErrInvalidInput, "nothing to choose from")
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		WithDefaultText(message).
		Show()
	if err != nil {
		return -1, errors.Wrap(err, errors.ErrPrompt, "selection failed")
	}

	for i, option := range options {
		if option == choice {
			return i, nil
		}
	}
	return -1, errors.Newf(errors.ErrInvalidInput, "invalid selection %q", choice)
}

func (t *Terminal) Text(message, defaultValue string) (string, error) {
	label := message
	if defaultValue != "" {
		label = fmt.Sprintf("%s (default: %s)", message, defaultValue)
	}

	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(label).
		Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "input failed")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (t *Terminal) Secret(message string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.
		WithMask("*").
		WithDefaultText(message).
		Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "input failed")
	}
	return strings.TrimSpace(answer), nil
}

func (t *Terminal) Confirm(message string, defaultValue bool) (bool, error) {
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(message).
		WithDefaultValue(defaultValue).
		Show()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, "confirmation failed")
	}
	return answer, nil
}
